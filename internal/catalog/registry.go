package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultCountryCode 未显式定义编目的国家统一回落到 DEFAULT
const DefaultCountryCode = "DEFAULT"

// ErrCatalogIntegrity 编目数据自身不一致（依赖指向不存在的 ID 或存在环）
type IntegrityError struct {
	CountryCode string
	Reason      string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog %s: %s", e.CountryCode, e.Reason)
}

type country struct {
	groups    map[Group][]Requirement
	flattened []Requirement
	byID      map[string]Requirement
	total     int
}

// Registry 进程级只读编目注册表，启动时构建并校验，之后不再变更
type Registry struct {
	countries map[string]*country
}

// NewRegistry 构建注册表并对每个国家的编目做完整性校验：
// 依赖必须指向同一编目内存在的 ID，且依赖关系必须无环。
// 校验失败直接返回错误，服务不应继续启动。
func NewRegistry(defs map[string]map[Group][]Requirement) (*Registry, error) {
	if _, ok := defs[DefaultCountryCode]; !ok {
		return nil, &IntegrityError{CountryCode: DefaultCountryCode, Reason: "missing DEFAULT catalog"}
	}

	r := &Registry{countries: make(map[string]*country, len(defs))}
	for code, groups := range defs {
		c, err := buildCountry(code, groups)
		if err != nil {
			return nil, err
		}
		r.countries[strings.ToUpper(code)] = c
	}
	return r, nil
}

func buildCountry(code string, groups map[Group][]Requirement) (*country, error) {
	c := &country{
		groups: groups,
		byID:   make(map[string]Requirement),
	}

	// 按固定分组顺序展开，保持组内原始顺序作为 priority 并列时的稳定解
	for _, g := range GroupOrder {
		for i := range groups[g] {
			groups[g][i].Group = g
			req := groups[g][i]
			if _, dup := c.byID[req.ID]; dup {
				return nil, &IntegrityError{CountryCode: code, Reason: fmt.Sprintf("duplicate requirement id %q", req.ID)}
			}
			c.byID[req.ID] = req
			c.flattened = append(c.flattened, req)
			c.total += req.Score
		}
	}

	for _, req := range c.flattened {
		for _, dep := range req.Dependencies {
			if _, ok := c.byID[dep]; !ok {
				return nil, &IntegrityError{
					CountryCode: code,
					Reason:      fmt.Sprintf("requirement %q depends on unknown id %q", req.ID, dep),
				}
			}
		}
	}

	if cycle := findCycle(c.byID); cycle != "" {
		return nil, &IntegrityError{
			CountryCode: code,
			Reason:      fmt.Sprintf("dependency cycle through %q", cycle),
		}
	}

	sort.SliceStable(c.flattened, func(i, j int) bool {
		return c.flattened[i].Priority < c.flattened[j].Priority
	})

	return c, nil
}

// findCycle 对依赖图做三色 DFS，返回环上任意一个 ID，无环返回空串
func findCycle(byID map[string]Requirement) string {
	const (
		white = iota
		gray
		black
	)
	state := make(map[string]int, len(byID))

	var visit func(id string) string
	visit = func(id string) string {
		state[id] = gray
		for _, dep := range byID[id].Dependencies {
			switch state[dep] {
			case gray:
				return dep
			case white:
				if hit := visit(dep); hit != "" {
					return hit
				}
			}
		}
		state[id] = black
		return ""
	}

	// map 迭代顺序无关紧要，任何起点都能发现环
	for id := range byID {
		if state[id] == white {
			if hit := visit(id); hit != "" {
				return hit
			}
		}
	}
	return ""
}

func (r *Registry) lookup(countryCode string) *country {
	if c, ok := r.countries[strings.ToUpper(countryCode)]; ok {
		return c
	}
	return r.countries[DefaultCountryCode]
}

// HasCountry 是否为显式定义的编目（而非 DEFAULT 回落）
func (r *Registry) HasCountry(countryCode string) bool {
	_, ok := r.countries[strings.ToUpper(countryCode)]
	return ok
}

// Catalog 返回按分组组织的编目，国家码大小写不敏感，未定义时回落 DEFAULT
func (r *Registry) Catalog(countryCode string) map[Group][]Requirement {
	return r.lookup(countryCode).groups
}

// Flattened 返回全部需求，按 priority 升序
func (r *Registry) Flattened(countryCode string) []Requirement {
	return r.lookup(countryCode).flattened
}

// TotalScore 编目内全部需求的分值之和
func (r *Registry) TotalScore(countryCode string) int {
	return r.lookup(countryCode).total
}

// Requirement 按 ID 查找单条需求
func (r *Registry) Requirement(countryCode, id string) (Requirement, bool) {
	req, ok := r.lookup(countryCode).byID[id]
	return req, ok
}

// Labels 将一组需求 ID 映射为显示标签，未知 ID 原样返回
func (r *Registry) Labels(countryCode string, ids []string) []string {
	c := r.lookup(countryCode)
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if req, ok := c.byID[id]; ok {
			labels = append(labels, req.Label)
		} else {
			labels = append(labels, id)
		}
	}
	return labels
}
