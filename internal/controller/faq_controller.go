package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FAQController struct {
	FAQService *service.FAQService
}

func NewFAQController(faqService *service.FAQService) *FAQController {
	return &FAQController{FAQService: faqService}
}

func (c *FAQController) List(ctx *gin.Context) {
	faqs, err := c.FAQService.ListGrouped()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"faqs": faqs})
}

func (c *FAQController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		util.BadRequest(ctx, "Missing search query")
		return
	}

	results, err := c.FAQService.Search(query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"results": results})
}
