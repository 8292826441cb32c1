package controller

import (
	"yonko_backend/internal/catalog"
	"yonko_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Registry *catalog.Registry
}

func NewCatalogController(registry *catalog.Registry) *CatalogController {
	return &CatalogController{Registry: registry}
}

type catalogGroup struct {
	Group        catalog.Group         `json:"group"`
	Label        string                `json:"label"`
	Requirements []catalog.Requirement `json:"requirements"`
}

// @Summary 获取国家编目
// @Description 按分组返回某国的全部申请需求，未定义的国家回落 DEFAULT
// @Tags 编目
// @Produce json
// @Param country path string true "国家码（大小写不敏感）"
// @Success 200 {object} util.Response
// @Router /catalog/{country} [get]
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	country := ctx.Param("country")
	grouped := c.Registry.Catalog(country)

	groups := make([]catalogGroup, 0, len(catalog.GroupOrder))
	for _, g := range catalog.GroupOrder {
		reqs, ok := grouped[g]
		if !ok {
			continue
		}
		groups = append(groups, catalogGroup{
			Group:        g,
			Label:        catalog.GroupLabel(g),
			Requirements: reqs,
		})
	}

	util.Success(ctx, gin.H{
		"countryCode": country,
		"explicit":    c.Registry.HasCountry(country),
		"groups":      groups,
		"totalScore":  c.Registry.TotalScore(country),
	})
}

// @Summary 获取展开的需求列表
// @Description 全部需求按 priority 升序展开，带总分
// @Tags 编目
// @Produce json
// @Param country path string true "国家码（大小写不敏感）"
// @Success 200 {object} util.Response
// @Router /catalog/{country}/requirements [get]
func (c *CatalogController) GetRequirements(ctx *gin.Context) {
	country := ctx.Param("country")

	util.Success(ctx, gin.H{
		"countryCode":  country,
		"requirements": c.Registry.Flattened(country),
		"totalScore":   c.Registry.TotalScore(country),
	})
}
