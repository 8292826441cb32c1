package controller

import (
	"yonko_backend/internal/service"
	"yonko_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// @Summary 创建用户
// @Description 分配 16 位访问码，前端用它索引自己的全部路线图
// @Tags 用户
// @Produce json
// @Success 201 {object} util.Response
// @Router /user [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	user, err := c.Service.Register()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"message": "User created successfully.",
		"key":     user.Code,
	})
}
