package mna

// SingularSystemError 矩阵构建/求解失败(对本步致命)。
// 在单步边界被捕获并转换为停止运行的故障，不向协调器外抛出。
type SingularSystemError struct {
	Err error
}

func (e *SingularSystemError) Error() string {
	return "无法求解电路: " + e.Err.Error()
}

func (e *SingularSystemError) Unwrap() error { return e.Err }
