package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"yonko_backend/internal/config"
	"yonko_backend/internal/model"
	"yonko_backend/pkg/logger"
	"yonko_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// SyncService 向可选的远端备份端点推送路线图。
// 本地库是持久化的权威来源：远端写是尽力而为，超时受限、失败只记日志和指标，
// 永远不会表现为调用方操作的失败。
type SyncService struct {
	mu     sync.RWMutex
	cfg    config.SyncConfig
	client *http.Client
}

func NewSyncService(cfg config.SyncConfig) *SyncService {
	return &SyncService{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// Reconfigure 配置热更时替换同步端点
func (s *SyncService) Reconfigure(cfg config.SyncConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *SyncService) snapshot() config.SyncConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Enabled 未配置 base_url 时同步整体关闭，服务退化为纯本地持久化
func (s *SyncService) Enabled() bool {
	return s.snapshot().BaseURL != ""
}

// PushAsync 异步推送一条路线图，立即返回
func (s *SyncService) PushAsync(rm *model.Roadmap) {
	if s == nil || !s.Enabled() {
		return
	}
	// 复制一份，调用方返回后可能继续改原对象
	cp := *rm
	go s.push(&cp)
}

func (s *SyncService) push(rm *model.Roadmap) {
	cfg := s.snapshot()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	body, err := json.Marshal(rm)
	if err != nil {
		s.fail(rm, err)
		return
	}

	url := fmt.Sprintf("%s/roadmap/%s", strings.TrimRight(cfg.BaseURL, "/"), rm.UserCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		s.fail(rm, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.fail(rm, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		s.fail(rm, fmt.Errorf("remote returned status %d", resp.StatusCode))
	}
}

func (s *SyncService) fail(rm *model.Roadmap, err error) {
	monitoring.SyncFailures.Inc()
	logger.Log.Warn("remote roadmap sync failed, local store remains authoritative",
		zap.String("userCode", rm.UserCode),
		zap.String("universityId", rm.UniversityID),
		zap.Error(err),
	)
}
