package service

import (
	"errors"
	"strings"
	"sync"

	"yonko_backend/internal/catalog"
	"yonko_backend/internal/model"
	"yonko_backend/internal/util"
	"yonko_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// RoadmapStore 路线图持久化操作，由 repository.RoadmapRepository 实现
type RoadmapStore interface {
	FindByUserAndUniversity(userCode, universityID string) (*model.Roadmap, error)
	FindAllByUser(userCode string) ([]model.Roadmap, error)
	Save(rm *model.Roadmap) error
	Delete(userCode, universityID string) error
}

// BlockedDependency 勾选被拒时返回的未完成前置，带标签供前端展示
type BlockedDependency struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ToggleResult 勾选操作的结果。被前置条件拦下不是错误：
// Accepted 为 false 时状态未变，Unmet 列出缺的前置。
type ToggleResult struct {
	Roadmap  *model.Roadmap      `json:"roadmap"`
	Accepted bool                `json:"accepted"`
	Unmet    []BlockedDependency `json:"unmet,omitempty"`
	Progress catalog.Progress    `json:"progress"`
}

// InitResult 初始化结果，AutoCompleted 只在创建这一次返回
type InitResult struct {
	Roadmap             *model.Roadmap   `json:"roadmap"`
	AutoCompleted       []string         `json:"autoCompleted"`
	AutoCompletedLabels []string         `json:"autoCompletedLabels"`
	Progress            catalog.Progress `json:"progress"`
}

type RoadmapService struct {
	Store    RoadmapStore
	Registry *catalog.Registry
	Sync     *SyncService

	// 每个 (userCode, universityID) 一把锁，串行化同一路线图上的读改写；
	// 不同大学的路线图互不阻塞
	locks sync.Map
}

func NewRoadmapService(store RoadmapStore, registry *catalog.Registry, sync *SyncService) *RoadmapService {
	return &RoadmapService{
		Store:    store,
		Registry: registry,
		Sync:     sync,
	}
}

func (s *RoadmapService) lockFor(userCode, universityID string) *sync.Mutex {
	key := userCode + "/" + universityID
	v, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// InitializeRoadmap 建立一张新路线图。幂等：已存在时原样返回，
// 不重置进度，国家码以首次创建为准。
// 新建时按编目播种全部需求为 false、备注为空串，并扫描该用户其它大学的
// 路线图，把已完成的同名需求 ID 预先勾上。
func (s *RoadmapService) InitializeRoadmap(userCode, universityID, countryCode string) (*InitResult, error) {
	mu := s.lockFor(userCode, universityID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.Store.FindByUserAndUniversity(userCode, universityID)
	if err == nil {
		return &InitResult{
			Roadmap:       existing,
			AutoCompleted: []string{},
			Progress:      s.Registry.CalculateProgress(existing.CountryCode, existing.Requirements),
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	country := strings.ToUpper(countryCode)
	reqs := s.Registry.Flattened(country)

	rm := &model.Roadmap{
		UserCode:     userCode,
		UniversityID: universityID,
		CountryCode:  country,
		Requirements: make(model.BoolMap, len(reqs)),
		Notes:        make(model.StringMap, len(reqs)),
	}
	for _, req := range reqs {
		rm.Requirements[req.ID] = false
		rm.Notes[req.ID] = ""
	}

	others, err := s.Store.FindAllByUser(userCode)
	if err != nil {
		return nil, err
	}
	matched := computeAutoCompletions(others, universityID, rm.Requirements)
	// 自动勾选结果按新编目的 priority 顺序返回
	auto := []string{}
	for _, req := range reqs {
		if matched[req.ID] {
			rm.Requirements[req.ID] = true
			auto = append(auto, req.ID)
		}
	}
	if len(auto) > 0 {
		monitoring.AutoCompletedRequirements.Add(float64(len(auto)))
	}

	if err := s.Store.Save(rm); err != nil {
		return nil, err
	}
	s.Sync.PushAsync(rm)

	rm.AutoCompleted = auto
	return &InitResult{
		Roadmap:             rm,
		AutoCompleted:       auto,
		AutoCompletedLabels: s.Registry.Labels(country, auto),
		Progress:            s.Registry.CalculateProgress(country, rm.Requirements),
	}, nil
}

// computeAutoCompletions 汇总该用户其它路线图里已完成的需求 ID，
// 与新编目的 ID 集合取交集。只做字面精确匹配，不做跨国语义对齐。
// 纯函数，只读输入，不改动任何既有路线图。
func computeAutoCompletions(existing []model.Roadmap, newUniversityID string, newRequirements model.BoolMap) map[string]bool {
	candidates := make(map[string]bool)
	for _, other := range existing {
		if other.UniversityID == newUniversityID {
			continue
		}
		for id, done := range other.Requirements {
			if done {
				candidates[id] = true
			}
		}
	}

	matched := make(map[string]bool)
	for id := range newRequirements {
		if candidates[id] {
			matched[id] = true
		}
	}
	return matched
}

// GetRoadmap 读取一张路线图，不存在时返回 ErrRoadmapNotFound，
// 与"存在但为空"是两种不同的情况
func (s *RoadmapService) GetRoadmap(userCode, universityID string) (*model.Roadmap, error) {
	rm, err := s.Store.FindByUserAndUniversity(userCode, universityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRoadmapNotFound
	}
	return rm, err
}

// GetAllRoadmaps 该用户全部路线图
func (s *RoadmapService) GetAllRoadmaps(userCode string) ([]model.Roadmap, error) {
	return s.Store.FindAllByUser(userCode)
}

// UpdateRequirement 翻转一条需求的完成状态。
// 置为完成前按当前完成集实时校验前置；置为未完成总是放行，
// 且不级联取消已完成的后继（沿用原有行为）。
func (s *RoadmapService) UpdateRequirement(userCode, universityID, requirementID string, value bool) (*ToggleResult, error) {
	mu := s.lockFor(userCode, universityID)
	mu.Lock()
	defer mu.Unlock()

	rm, err := s.GetRoadmap(userCode, universityID)
	if err != nil {
		return nil, err
	}

	req, ok := s.Registry.Requirement(rm.CountryCode, requirementID)
	if !ok {
		return nil, util.ErrRequirementNotFound
	}
	if _, seeded := rm.Requirements[requirementID]; !seeded {
		return nil, util.ErrRequirementNotFound
	}

	if value {
		if unmet := catalog.UnmetDependencies(req, rm.Requirements); len(unmet) > 0 {
			monitoring.RejectedToggles.Inc()
			blocked := make([]BlockedDependency, 0, len(unmet))
			labels := s.Registry.Labels(rm.CountryCode, unmet)
			for i, id := range unmet {
				blocked = append(blocked, BlockedDependency{ID: id, Label: labels[i]})
			}
			return &ToggleResult{
				Roadmap:  rm,
				Accepted: false,
				Unmet:    blocked,
				Progress: s.Registry.CalculateProgress(rm.CountryCode, rm.Requirements),
			}, nil
		}
	}

	rm.Requirements[requirementID] = value
	if err := s.Store.Save(rm); err != nil {
		return nil, err
	}
	s.Sync.PushAsync(rm)

	return &ToggleResult{
		Roadmap:  rm,
		Accepted: true,
		Progress: s.Registry.CalculateProgress(rm.CountryCode, rm.Requirements),
	}, nil
}

// UpdateNote 更新一条需求的备注，无条件接受
func (s *RoadmapService) UpdateNote(userCode, universityID, requirementID, text string) (*model.Roadmap, error) {
	mu := s.lockFor(userCode, universityID)
	mu.Lock()
	defer mu.Unlock()

	rm, err := s.GetRoadmap(userCode, universityID)
	if err != nil {
		return nil, err
	}

	if _, seeded := rm.Notes[requirementID]; !seeded {
		return nil, util.ErrRequirementNotFound
	}

	rm.Notes[requirementID] = text
	if err := s.Store.Save(rm); err != nil {
		return nil, err
	}
	s.Sync.PushAsync(rm)

	return rm, nil
}

// Progress 一张路线图的加权进度
func (s *RoadmapService) Progress(userCode, universityID string) (catalog.Progress, error) {
	rm, err := s.GetRoadmap(userCode, universityID)
	if err != nil {
		return catalog.Progress{}, err
	}
	return s.Registry.CalculateProgress(rm.CountryCode, rm.Requirements), nil
}

// IsCompleted 加权进度恰好 100.0 时视为该大学申请全部完成
func (s *RoadmapService) IsCompleted(userCode, universityID string) (bool, error) {
	p, err := s.Progress(userCode, universityID)
	if err != nil {
		return false, err
	}
	return p.Completed(), nil
}

// DeleteRoadmap 删除一张路线图
func (s *RoadmapService) DeleteRoadmap(userCode, universityID string) error {
	mu := s.lockFor(userCode, universityID)
	mu.Lock()
	defer mu.Unlock()

	if _, err := s.GetRoadmap(userCode, universityID); err != nil {
		return err
	}
	return s.Store.Delete(userCode, universityID)
}
