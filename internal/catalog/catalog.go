package catalog

// Group 需求分组
type Group string

const (
	GroupAcademic  Group = "academic"
	GroupLanguage  Group = "language"
	GroupDocuments Group = "documents"
	GroupVisa      Group = "visa"
	GroupFinancial Group = "financial"
)

// GroupOrder 分组的固定展示顺序，展开时按该顺序遍历
var GroupOrder = []Group{
	GroupAcademic,
	GroupLanguage,
	GroupDocuments,
	GroupVisa,
	GroupFinancial,
}

// ScoreKind 成绩类型的封闭标记集合，在编目时显式指定，前端不再按标签文本推断
type ScoreKind string

const (
	ScoreKindGPA        ScoreKind = "gpa"
	ScoreKindSAT        ScoreKind = "sat"
	ScoreKindToeflIelts ScoreKind = "toefl_ielts"
	ScoreKindGeneric    ScoreKind = "generic"
)

// Requirement 单条申请需求定义，编目数据，运行期不可变
type Requirement struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Description  string    `json:"description"`
	Group        Group     `json:"group"`
	Priority     int       `json:"priority"` // 全局排序用，编目内唯一
	Level        int       `json:"level"`    // 展示分层提示，不参与解锁判定
	Dependencies []string  `json:"dependencies"`
	Score        int       `json:"score"`
	Required     bool      `json:"required"`
	ScoreKind    ScoreKind `json:"scoreKind"`
}

// GroupLabel 分组显示名，未知分组原样返回
func GroupLabel(group Group) string {
	labels := map[Group]string{
		GroupAcademic:  "Academic Requirements",
		GroupLanguage:  "Language Requirements",
		GroupDocuments: "Documentation",
		GroupVisa:      "Visa Requirements",
		GroupFinancial: "Financial Requirements",
	}
	if label, ok := labels[group]; ok {
		return label
	}
	return string(group)
}
