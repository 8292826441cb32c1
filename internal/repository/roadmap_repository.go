package repository

import (
	"context"
	"encoding/json"
	"time"

	"yonko_backend/internal/model"
	"yonko_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 单条路线图的读穿缓存有效期。写路径总是同步回填，TTL 只兜底外部改库的情况
const roadmapCacheTTL = 10 * time.Minute

type RoadmapRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewRoadmapRepository(db *gorm.DB, rdb *redis.Client) *RoadmapRepository {
	return &RoadmapRepository{DB: db, Redis: rdb, ctx: context.Background()}
}

func cacheKey(userCode, universityID string) string {
	return "yonko:roadmap:" + userCode + ":" + universityID
}

// FindByUserAndUniversity 先查缓存再落库，命中库后回填缓存。
// 记录不存在时透传 gorm.ErrRecordNotFound，由上层映射为 NotFound。
func (r *RoadmapRepository) FindByUserAndUniversity(userCode, universityID string) (*model.Roadmap, error) {
	key := cacheKey(userCode, universityID)

	if r.Redis != nil {
		if raw, err := r.Redis.Get(r.ctx, key).Result(); err == nil {
			var rm model.Roadmap
			if jsonErr := json.Unmarshal([]byte(raw), &rm); jsonErr == nil {
				return &rm, nil
			}
			// 缓存内容损坏，删掉走库
			r.Redis.Del(r.ctx, key)
		}
	}

	var rm model.Roadmap
	err := r.DB.Where("user_code = ? AND university_id = ?", userCode, universityID).First(&rm).Error
	if err != nil {
		return nil, err
	}

	r.fillCache(&rm)
	return &rm, nil
}

func (r *RoadmapRepository) FindAllByUser(userCode string) ([]model.Roadmap, error) {
	var rms []model.Roadmap
	err := r.DB.Where("user_code = ?", userCode).Order("created_at asc").Find(&rms).Error
	return rms, err
}

// Save 落库后写穿缓存，保证缓存始终反映最近一次成功写入
func (r *RoadmapRepository) Save(rm *model.Roadmap) error {
	if err := r.DB.Save(rm).Error; err != nil {
		return err
	}
	r.fillCache(rm)
	return nil
}

func (r *RoadmapRepository) Delete(userCode, universityID string) error {
	err := r.DB.Where("user_code = ? AND university_id = ?", userCode, universityID).
		Delete(&model.Roadmap{}).Error
	if err != nil {
		return err
	}
	if r.Redis != nil {
		r.Redis.Del(r.ctx, cacheKey(userCode, universityID))
	}
	return nil
}

func (r *RoadmapRepository) fillCache(rm *model.Roadmap) {
	if r.Redis == nil {
		return
	}
	raw, err := json.Marshal(rm)
	if err != nil {
		return
	}
	if err := r.Redis.Set(r.ctx, cacheKey(rm.UserCode, rm.UniversityID), raw, roadmapCacheTTL).Err(); err != nil {
		logger.Log.Warn("roadmap cache write failed", zap.Error(err))
	}
}
