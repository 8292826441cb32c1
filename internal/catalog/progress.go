package catalog

import "math"

// Progress 加权进度汇总。百分比按分值加权而非条目计数：
// 20 分的需求对进度的贡献大于 2 分的需求。
type Progress struct {
	Percentage     float64 `json:"percentage"`
	Score          int     `json:"score"`
	TotalScore     int     `json:"totalScore"`
	CompletedCount int     `json:"completedCount"`
	TotalCount     int     `json:"totalCount"`
}

// Completed 是否全部完成，百分比严格等于 100.0 时成立
func (p Progress) Completed() bool {
	return p.Percentage == 100.0
}

// CalculateProgress 根据完成状态计算加权进度。
// requirements 为 nil 时返回全零结果，从不报错。
// 百分比四舍五入保留一位小数。
func (r *Registry) CalculateProgress(countryCode string, requirements map[string]bool) Progress {
	if requirements == nil {
		return Progress{}
	}

	c := r.lookup(countryCode)
	p := Progress{
		TotalScore: c.total,
		TotalCount: len(c.flattened),
	}

	for id, done := range requirements {
		if !done {
			continue
		}
		p.CompletedCount++
		if req, ok := c.byID[id]; ok {
			p.Score += req.Score
		}
	}

	if p.TotalScore > 0 {
		p.Percentage = round1(float64(p.Score) / float64(p.TotalScore) * 100)
	}
	return p
}

// round1 保留一位小数，0.05 进位
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
