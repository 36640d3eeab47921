package delivery

import (
	"errors"
	"net/http"

	"learnsphere/config"
	"learnsphere/domain"
	"learnsphere/dto"
	"learnsphere/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUseCase
}

func NewReviewHandler(r *gin.Engine, reviewUC domain.ReviewUseCase, jwtManager *utils.JWTManager) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	r.GET("/courses/:id/reviews", handler.CourseReviews)
	r.GET("/courses/:id/rating", handler.AverageRating)

	// Any authenticated user may review; a second review by the same user
	// replaces the first.
	protected := r.Group("/courses")
	protected.Use(config.AuthMiddleware(jwtManager))
	{
		protected.POST("/:id/reviews", handler.AddReview)
		protected.GET("/:id/reviews/mine", handler.MyReview)
	}
}

func (h *ReviewHandler) CourseReviews(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	reviews, err := h.reviewUC.CourseReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(&name, 500, "CourseReviews", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch reviews",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "CourseReviews", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reviews,
	})
}

func (h *ReviewHandler) AverageRating(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	average, err := h.reviewUC.AverageRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(&name, 500, "AverageRating", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to compute rating",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "AverageRating", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"courseId": c.Param("id"),
			"average":  average,
		},
	})
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, exists := c.Get("userID")
	if !exists {
		utils.PrintLogInfo(&name, 401, "AddReview", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to add review",
		})
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "AddReview", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to add review",
		})
		return
	}

	review, err := h.reviewUC.AddReview(
		c.Request.Context(),
		userID.(string),
		utils.GetAPIHitter(c),
		c.Param("id"),
		req.Rating,
		req.Comment,
	)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			utils.PrintLogInfo(&name, 404, "AddReview", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to add review",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "AddReview", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to add review",
		})
		return
	}

	utils.PrintLogInfo(&name, 201, "AddReview", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    review,
	})
}

func (h *ReviewHandler) MyReview(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, exists := c.Get("userID")
	if !exists {
		utils.PrintLogInfo(&name, 401, "MyReview", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to fetch review",
		})
		return
	}

	review, err := h.reviewUC.UserReview(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			utils.PrintLogInfo(&name, 404, "MyReview", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to fetch review",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "MyReview", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch review",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "MyReview", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    review,
	})
}
