package catalog

// DependenciesMet 判断一条需求的全部前置是否均已完成。
// 无依赖的需求始终可完成。纯函数，每次勾选时基于当前完成集实时判定。
func DependenciesMet(req Requirement, completed map[string]bool) bool {
	for _, dep := range req.Dependencies {
		if !completed[dep] {
			return false
		}
	}
	return true
}

// UnmetDependencies 返回尚未完成的前置 ID，保持编目中声明的依赖顺序，
// 用于向用户解释为何不能勾选
func UnmetDependencies(req Requirement, completed map[string]bool) []string {
	var unmet []string
	for _, dep := range req.Dependencies {
		if !completed[dep] {
			unmet = append(unmet, dep)
		}
	}
	return unmet
}
