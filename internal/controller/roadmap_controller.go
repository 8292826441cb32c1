package controller

import (
	"errors"

	"yonko_backend/internal/service"
	"yonko_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	Service *service.RoadmapService
	Users   *service.UserService
}

func NewRoadmapController(svc *service.RoadmapService, users *service.UserService) *RoadmapController {
	return &RoadmapController{Service: svc, Users: users}
}

// resolveUser 校验访问码对应的用户存在，不存在时写好响应并返回 false
func (c *RoadmapController) resolveUser(ctx *gin.Context) bool {
	code := ctx.Param("code")
	if _, err := c.Users.GetByCode(code); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return false
	}
	return true
}

type initRoadmapRequest struct {
	CountryCode string `json:"countryCode" binding:"required"`
}

// @Summary 初始化路线图
// @Description 幂等创建。新建时按国家编目播种需求，并从该用户其它大学的路线图自动勾选已完成的同名需求
// @Tags 路线图
// @Accept json
// @Produce json
// @Param code path string true "访问码"
// @Param universityId path string true "大学ID"
// @Param body body initRoadmapRequest true "国家码"
// @Success 201 {object} util.Response
// @Router /roadmap/{code}/{universityId} [post]
func (c *RoadmapController) InitializeRoadmap(ctx *gin.Context) {
	if !c.resolveUser(ctx) {
		return
	}

	var req initRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.InitializeRoadmap(ctx.Param("code"), ctx.Param("universityId"), req.CountryCode)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary 获取用户全部路线图
// @Tags 路线图
// @Produce json
// @Param code path string true "访问码"
// @Success 200 {object} util.Response
// @Router /roadmap/{code} [get]
func (c *RoadmapController) GetAllRoadmaps(ctx *gin.Context) {
	if !c.resolveUser(ctx) {
		return
	}

	rms, err := c.Service.GetAllRoadmaps(ctx.Param("code"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rms)
}

// @Summary 获取单个路线图
// @Description 返回路线图与当前加权进度；不存在返回 404，调用方应先初始化
// @Tags 路线图
// @Produce json
// @Param code path string true "访问码"
// @Param universityId path string true "大学ID"
// @Success 200 {object} util.Response
// @Router /roadmap/{code}/{universityId} [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	if !c.resolveUser(ctx) {
		return
	}

	code, uni := ctx.Param("code"), ctx.Param("universityId")
	rm, err := c.Service.GetRoadmap(code, uni)
	if err != nil {
		c.writeRoadmapError(ctx, err)
		return
	}

	progress, err := c.Service.Progress(code, uni)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"roadmap":  rm,
		"progress": progress,
	})
}

type updateRequirementRequest struct {
	Value *bool `json:"value" binding:"required"`
}

// @Summary 勾选/取消需求
// @Description 置为完成前校验依赖；被拒时 accepted=false 并附未满足的前置列表，取消始终放行
// @Tags 路线图
// @Accept json
// @Produce json
// @Param code path string true "访问码"
// @Param universityId path string true "大学ID"
// @Param requirementId path string true "需求ID"
// @Param body body updateRequirementRequest true "目标状态"
// @Success 200 {object} util.Response
// @Router /roadmap/{code}/{universityId}/requirements/{requirementId} [put]
func (c *RoadmapController) UpdateRequirement(ctx *gin.Context) {
	if !c.resolveUser(ctx) {
		return
	}

	var req updateRequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.UpdateRequirement(
		ctx.Param("code"),
		ctx.Param("universityId"),
		ctx.Param("requirementId"),
		*req.Value,
	)
	if err != nil {
		c.writeRoadmapError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

type updateNoteRequest struct {
	Text string `json:"text"`
}

// @Summary 更新需求备注
// @Tags 路线图
// @Accept json
// @Produce json
// @Param code path string true "访问码"
// @Param universityId path string true "大学ID"
// @Param requirementId path string true "需求ID"
// @Param body body updateNoteRequest true "备注文本"
// @Success 200 {object} util.Response
// @Router /roadmap/{code}/{universityId}/notes/{requirementId} [put]
func (c *RoadmapController) UpdateNote(ctx *gin.Context) {
	if !c.resolveUser(ctx) {
		return
	}

	var req updateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rm, err := c.Service.UpdateNote(
		ctx.Param("code"),
		ctx.Param("universityId"),
		ctx.Param("requirementId"),
		req.Text,
	)
	if err != nil {
		c.writeRoadmapError(ctx, err)
		return
	}

	util.Success(ctx, rm)
}

// @Summary 获取路线图进度
// @Description 按分值加权的完成百分比，completed 在恰好 100.0 时为 true
// @Tags 路线图
// @Produce json
// @Param code path string true "访问码"
// @Param universityId path string true "大学ID"
// @Success 200 {object} util.Response
// @Router /roadmap/{code}/{universityId}/progress [get]
func (c *RoadmapController) GetProgress(ctx *gin.Context) {
	if !c.resolveUser(ctx) {
		return
	}

	progress, err := c.Service.Progress(ctx.Param("code"), ctx.Param("universityId"))
	if err != nil {
		c.writeRoadmapError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"progress":  progress,
		"completed": progress.Completed(),
	})
}

// @Summary 删除路线图
// @Tags 路线图
// @Produce json
// @Param code path string true "访问码"
// @Param universityId path string true "大学ID"
// @Success 200 {object} util.Response
// @Router /roadmap/{code}/{universityId} [delete]
func (c *RoadmapController) DeleteRoadmap(ctx *gin.Context) {
	if !c.resolveUser(ctx) {
		return
	}

	uni := ctx.Param("universityId")
	if err := c.Service.DeleteRoadmap(ctx.Param("code"), uni); err != nil {
		c.writeRoadmapError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message":       "Roadmap deleted successfully.",
		"university_id": uni,
	})
}

func (c *RoadmapController) writeRoadmapError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrRoadmapNotFound):
		util.NotFound(ctx, "Roadmap not found for this university")
	case errors.Is(err, util.ErrRequirementNotFound):
		util.BadRequest(ctx, "Unknown requirement id for this roadmap")
	default:
		util.LogInternalError(ctx, err)
	}
}
