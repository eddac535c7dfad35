package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"circuitlab/debug"
	"circuitlab/load"
	"circuitlab/sim"
	"circuitlab/types"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "circuitlab",
		Short: "基于改进节点分析法的电路网表仿真器",
		Long: `circuitlab 加载网表描述的电路，按固定步长运行确定性仿真，
输出节点电压、元件电流与故障报告，并可导出曲线页面。`,
	}
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(exportCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		ticks     int
		deltaTime float64
		chartFile string
	)
	cmd := &cobra.Command{
		Use:   "run <netlist>",
		Short: "加载网表并运行仿真",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, err := load.File(args[0])
			if err != nil {
				return err
			}
			rec := &debug.Charts{}
			rec.Init(cir.Components, cir.Wires)
			var out *sim.Output
			for i := 0; i < ticks; i++ {
				out, err = cir.Tick(deltaTime)
				if err != nil {
					return err
				}
				rec.Update(cir.Runner.Time, out, cir.Components)
				printFaults(cir.Runner.Time, out.NewFaults)
				if out.Halted {
					color.Red("仿真在 t=%.6gs 终止", cir.Runner.Time)
					break
				}
			}
			if out != nil {
				printResult(cir.Runner.Time, out, cir.Components)
			}
			if chartFile != "" {
				f, err := os.Create(chartFile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := rec.Render(f); err != nil {
					return err
				}
				fmt.Printf("曲线页面已写入 %s\n", chartFile)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "t", 100, "仿真步数")
	cmd.Flags().Float64Var(&deltaTime, "dt", 0.001, "仿真步长(秒)")
	cmd.Flags().StringVarP(&chartFile, "chart", "o", "", "输出曲线HTML文件路径")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <netlist>",
		Short: "加载网表并输出规范化形式",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, err := load.File(args[0])
			if err != nil {
				return err
			}
			return load.Export(cir, os.Stdout)
		},
	}
}

// printFaults 按严重级别着色输出本步新增故障
func printFaults(now float64, faults []types.Fault) {
	for _, f := range faults {
		line := fmt.Sprintf("[t=%.6gs] %s: %s (%s)", now, f.ID, f.Message, f.Severity)
		switch f.Severity {
		case types.SeverityCritical:
			color.Red(line)
		case types.SeverityError:
			color.Yellow(line)
		default:
			color.Cyan(line)
		}
	}
}

// printResult 输出末步的节点电压与元件状态
func printResult(now float64, out *sim.Output, components []*types.Component) {
	fmt.Printf("t=%.6gs 节点电压:\n", now)
	for i, v := range out.NodeVoltages {
		fmt.Printf("  Node(%d) = %.6g V\n", i, v)
	}
	fmt.Println("元件:")
	for _, c := range components {
		fmt.Printf("  %s%d: %.6g V, %.6g A\n", c.Kind, c.ID, c.VoltageDrop, c.SolvedCurrent)
	}
}
