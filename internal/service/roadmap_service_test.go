package service

import (
	"sync"
	"testing"

	"yonko_backend/internal/catalog"
	"yonko_backend/internal/model"
	"yonko_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore 内存版 RoadmapStore，行为对齐 repository.RoadmapRepository：
// 未命中返回 gorm.ErrRecordNotFound，FindAllByUser 按创建顺序返回
type memStore struct {
	mu       sync.Mutex
	order    []string
	roadmaps map[string]*model.Roadmap
}

func newMemStore() *memStore {
	return &memStore{roadmaps: make(map[string]*model.Roadmap)}
}

func storeKey(userCode, universityID string) string {
	return userCode + "/" + universityID
}

func cloneRoadmap(rm *model.Roadmap) *model.Roadmap {
	c := *rm
	c.Requirements = make(model.BoolMap, len(rm.Requirements))
	for k, v := range rm.Requirements {
		c.Requirements[k] = v
	}
	c.Notes = make(model.StringMap, len(rm.Notes))
	for k, v := range rm.Notes {
		c.Notes[k] = v
	}
	return &c
}

func (s *memStore) FindByUserAndUniversity(userCode, universityID string) (*model.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rm, ok := s.roadmaps[storeKey(userCode, universityID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneRoadmap(rm), nil
}

func (s *memStore) FindAllByUser(userCode string) ([]model.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Roadmap
	for _, key := range s.order {
		rm := s.roadmaps[key]
		if rm != nil && rm.UserCode == userCode {
			out = append(out, *cloneRoadmap(rm))
		}
	}
	return out, nil
}

func (s *memStore) Save(rm *model.Roadmap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := storeKey(rm.UserCode, rm.UniversityID)
	if _, ok := s.roadmaps[key]; !ok {
		s.order = append(s.order, key)
	}
	s.roadmaps[key] = cloneRoadmap(rm)
	return nil
}

func (s *memStore) Delete(userCode, universityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roadmaps, storeKey(userCode, universityID))
	return nil
}

func newTestService(t *testing.T) *RoadmapService {
	t.Helper()
	registry, err := catalog.Builtin()
	require.NoError(t, err)
	return NewRoadmapService(newMemStore(), registry, nil)
}

func TestInitializeRoadmapSeedsCatalog(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "us")
	require.NoError(t, err)
	require.Equal(t, "US", res.Roadmap.CountryCode)
	require.Len(t, res.Roadmap.Requirements, 14)
	require.Len(t, res.Roadmap.Notes, 14)
	require.Empty(t, res.AutoCompleted)
	require.Zero(t, res.Progress.Percentage)

	for id, done := range res.Roadmap.Requirements {
		require.False(t, done, "requirement %s should start unchecked", id)
	}
	for id, note := range res.Roadmap.Notes {
		require.Empty(t, note, "note for %s should start empty", id)
	}
}

func TestInitializeRoadmapUnknownCountryFallsBack(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.InitializeRoadmap("user0001aaaabbbb", "eth", "CH")
	require.NoError(t, err)
	// 国家码原样保留，但需求集合来自 DEFAULT 编目
	require.Equal(t, "CH", res.Roadmap.CountryCode)
	require.Len(t, res.Roadmap.Requirements, 8)
	require.Contains(t, res.Roadmap.Requirements, "language_proficiency")
}

func TestInitializeRoadmapIdempotent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "US")
	require.NoError(t, err)

	toggled, err := svc.UpdateRequirement("user0001aaaabbbb", "mit", "minimum_gpa", true)
	require.NoError(t, err)
	require.True(t, toggled.Accepted)

	// 重复初始化不重置进度，国家码以首次创建为准
	res, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "GB")
	require.NoError(t, err)
	require.Equal(t, "US", res.Roadmap.CountryCode)
	require.True(t, res.Roadmap.Requirements["minimum_gpa"])
	require.Empty(t, res.AutoCompleted)
	require.Equal(t, 18.2, res.Progress.Percentage)
}

func TestUpdateRequirementDependencyGating(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "US")
	require.NoError(t, err)

	// 前置全缺时拒绝勾选，按编目声明顺序列出缺口
	res, err := svc.UpdateRequirement("user0001aaaabbbb", "mit", "university_acceptance_letter", true)
	require.NoError(t, err)
	require.False(t, res.Accepted)
	require.Equal(t, []BlockedDependency{
		{ID: "sat_scores", Label: "SAT Scores"},
		{ID: "academic_transcripts", Label: "Academic Transcripts and Certificates"},
		{ID: "toefl_ielts", Label: "TOEFL/IELTS Scores"},
	}, res.Unmet)
	require.False(t, res.Roadmap.Requirements["university_acceptance_letter"], "rejected toggle must not change state")

	// 被拒后状态未变
	rm, err := svc.GetRoadmap("user0001aaaabbbb", "mit")
	require.NoError(t, err)
	require.False(t, rm.Requirements["university_acceptance_letter"])

	// 满足全部前置后放行
	for _, id := range []string{"minimum_gpa", "sat_scores", "academic_transcripts", "toefl_ielts"} {
		res, err = svc.UpdateRequirement("user0001aaaabbbb", "mit", id, true)
		require.NoError(t, err)
		require.True(t, res.Accepted, "toggle %s should be accepted", id)
	}
	res, err = svc.UpdateRequirement("user0001aaaabbbb", "mit", "university_acceptance_letter", true)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.Empty(t, res.Unmet)
}

func TestUpdateRequirementUncheckAlwaysAllowed(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "US")
	require.NoError(t, err)

	for _, id := range []string{"minimum_gpa", "sat_scores"} {
		_, err = svc.UpdateRequirement("user0001aaaabbbb", "mit", id, true)
		require.NoError(t, err)
	}

	// 取消前置不受门控限制，也不级联取消后继
	res, err := svc.UpdateRequirement("user0001aaaabbbb", "mit", "minimum_gpa", false)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.False(t, res.Roadmap.Requirements["minimum_gpa"])
	require.True(t, res.Roadmap.Requirements["sat_scores"])
}

func TestUpdateRequirementUnknownID(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "US")
	require.NoError(t, err)

	_, err = svc.UpdateRequirement("user0001aaaabbbb", "mit", "no_such_requirement", true)
	require.ErrorIs(t, err, util.ErrRequirementNotFound)

	// ielts_toefl 属于 GB 编目，对美国路线图同样视为未知
	_, err = svc.UpdateRequirement("user0001aaaabbbb", "mit", "ielts_toefl", true)
	require.ErrorIs(t, err, util.ErrRequirementNotFound)
}

func TestRoadmapNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetRoadmap("user0001aaaabbbb", "mit")
	require.ErrorIs(t, err, util.ErrRoadmapNotFound)

	_, err = svc.UpdateRequirement("user0001aaaabbbb", "mit", "minimum_gpa", true)
	require.ErrorIs(t, err, util.ErrRoadmapNotFound)

	_, err = svc.Progress("user0001aaaabbbb", "mit")
	require.ErrorIs(t, err, util.ErrRoadmapNotFound)

	err = svc.DeleteRoadmap("user0001aaaabbbb", "mit")
	require.ErrorIs(t, err, util.ErrRoadmapNotFound)
}

func TestCrossUniversityAutoCompletion(t *testing.T) {
	svc := newTestService(t)
	user := "user0001aaaabbbb"

	_, err := svc.InitializeRoadmap(user, "mit", "US")
	require.NoError(t, err)
	for _, id := range []string{"minimum_gpa", "academic_transcripts", "toefl_ielts"} {
		res, err := svc.UpdateRequirement(user, "mit", id, true)
		require.NoError(t, err)
		require.True(t, res.Accepted)
	}

	res, err := svc.InitializeRoadmap(user, "oxford", "GB")
	require.NoError(t, err)

	// minimum_gpa / academic_transcripts 字面同名，跨校转移；
	// toefl_ielts 在 GB 编目中叫 ielts_toefl，不做语义对齐，不转移
	require.Equal(t, []string{"minimum_gpa", "academic_transcripts"}, res.AutoCompleted)
	require.Equal(t, []string{
		"Meet Minimum GPA Requirement",
		"Academic Transcripts and Certificates",
	}, res.AutoCompletedLabels)
	require.True(t, res.Roadmap.Requirements["minimum_gpa"])
	require.True(t, res.Roadmap.Requirements["academic_transcripts"])
	require.False(t, res.Roadmap.Requirements["ielts_toefl"])

	// 源路线图不受影响
	src, err := svc.GetRoadmap(user, "mit")
	require.NoError(t, err)
	require.True(t, src.Requirements["toefl_ielts"])
	require.Len(t, src.Requirements, 14)

	// 自动勾选只随创建返回一次，重读不再携带
	again, err := svc.GetRoadmap(user, "oxford")
	require.NoError(t, err)
	require.Empty(t, again.AutoCompleted)
	require.True(t, again.Requirements["minimum_gpa"])
}

func TestAutoCompletionAcrossUsersIsolated(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "US")
	require.NoError(t, err)
	_, err = svc.UpdateRequirement("user0001aaaabbbb", "mit", "minimum_gpa", true)
	require.NoError(t, err)

	// 其他用户的进度不参与自动勾选
	res, err := svc.InitializeRoadmap("user0002ccccdddd", "mit", "US")
	require.NoError(t, err)
	require.Empty(t, res.AutoCompleted)
	require.False(t, res.Roadmap.Requirements["minimum_gpa"])
}

func TestUpdateNote(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.InitializeRoadmap("user0001aaaabbbb", "mit", "US")
	require.NoError(t, err)

	// 备注不受依赖门控限制，未完成的需求也能记备注
	rm, err := svc.UpdateNote("user0001aaaabbbb", "mit", "university_acceptance_letter", "deadline 2026-01-15")
	require.NoError(t, err)
	require.Equal(t, "deadline 2026-01-15", rm.Notes["university_acceptance_letter"])

	rm, err = svc.UpdateNote("user0001aaaabbbb", "mit", "university_acceptance_letter", "")
	require.NoError(t, err)
	require.Empty(t, rm.Notes["university_acceptance_letter"])

	_, err = svc.UpdateNote("user0001aaaabbbb", "mit", "no_such_requirement", "x")
	require.ErrorIs(t, err, util.ErrRequirementNotFound)
}

func TestProgressAndCompletion(t *testing.T) {
	svc := newTestService(t)
	user := "user0001aaaabbbb"
	_, err := svc.InitializeRoadmap(user, "eth", "ZZ")
	require.NoError(t, err)

	done, err := svc.IsCompleted(user, "eth")
	require.NoError(t, err)
	require.False(t, done)

	// DEFAULT 编目按 priority 顺序勾选恰好满足全部前置
	registry, err := catalog.Builtin()
	require.NoError(t, err)
	for _, req := range registry.Flattened("DEFAULT") {
		res, err := svc.UpdateRequirement(user, "eth", req.ID, true)
		require.NoError(t, err)
		require.True(t, res.Accepted, "toggle %s should be accepted", req.ID)
	}

	p, err := svc.Progress(user, "eth")
	require.NoError(t, err)
	require.Equal(t, 100.0, p.Percentage)
	require.Equal(t, 95, p.Score)
	require.Equal(t, 8, p.CompletedCount)

	done, err = svc.IsCompleted(user, "eth")
	require.NoError(t, err)
	require.True(t, done)
}

func TestDeleteRoadmap(t *testing.T) {
	svc := newTestService(t)
	user := "user0001aaaabbbb"
	_, err := svc.InitializeRoadmap(user, "mit", "US")
	require.NoError(t, err)
	_, err = svc.InitializeRoadmap(user, "oxford", "GB")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoadmap(user, "mit"))

	_, err = svc.GetRoadmap(user, "mit")
	require.ErrorIs(t, err, util.ErrRoadmapNotFound)

	all, err := svc.GetAllRoadmaps(user)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "oxford", all[0].UniversityID)
}

func TestConcurrentTogglesSameRoadmap(t *testing.T) {
	svc := newTestService(t)
	user := "user0001aaaabbbb"
	_, err := svc.InitializeRoadmap(user, "mit", "US")
	require.NoError(t, err)
	_, err = svc.UpdateRequirement(user, "mit", "minimum_gpa", true)
	require.NoError(t, err)

	var wg sync.WaitGroup
	ids := []string{"sat_scores", "academic_transcripts", "toefl_ielts"}
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.UpdateRequirement(user, "mit", id, true)
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rm, err := svc.GetRoadmap(user, "mit")
	require.NoError(t, err)
	for _, id := range ids {
		require.True(t, rm.Requirements[id], "lost update on %s", id)
	}
}
