package workflow

// Optimistic 乐观更新模板：先在本地应用变更，再执行远端副作用，
// 远端失败时用事先捕获的快照整体回滚本地状态。
// 所有需要"先改界面、失败再还原"的调用点共用这一个实现，
// 不在各处重复快照/恢复逻辑。
func Optimistic[S any](capture func() S, mutate func(), remote func() error, restore func(S)) error {
	snapshot := capture()
	mutate()

	if err := remote(); err != nil {
		restore(snapshot)
		return err
	}
	return nil
}
