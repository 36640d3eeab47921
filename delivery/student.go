package delivery

import (
	"errors"
	"net/http"

	"learnsphere/config"
	"learnsphere/domain"
	"learnsphere/dto"
	"learnsphere/middleware"
	"learnsphere/utils"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	entitlementUC domain.EntitlementUseCase
}

func NewStudentHandler(r *gin.Engine, entitlementUC domain.EntitlementUseCase, jwtManager *utils.JWTManager) {
	handler := &StudentHandler{entitlementUC: entitlementUC}

	student := r.Group("/student")
	student.Use(config.AuthMiddleware(jwtManager), middleware.RoleOnly(domain.RoleStudent))
	{
		student.POST("/enroll", handler.Enroll)
		student.POST("/purchase", handler.Purchase)
		student.GET("/courses", handler.EnrolledCourses)
		student.GET("/bundles", handler.PurchasedBundles)
		student.GET("/courses/:id/enrolled", handler.IsEnrolled)
		student.GET("/bundles/:id/purchased", handler.IsPurchased)
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

func (h *StudentHandler) Enroll(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "Enroll", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to enroll",
		})
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "Enroll", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to enroll",
		})
		return
	}

	if err := h.entitlementUC.EnrollCourse(c.Request.Context(), userID, req.CourseID); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			utils.PrintLogInfo(&name, 404, "Enroll", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to enroll",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "Enroll", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to enroll",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "Enroll", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Enrolled in course",
	})
}

func (h *StudentHandler) Purchase(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "Purchase", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to purchase",
		})
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "Purchase", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to purchase",
		})
		return
	}

	if err := h.entitlementUC.PurchaseBundle(c.Request.Context(), userID, req.BundleID); err != nil {
		if errors.Is(err, domain.ErrBundleNotFound) {
			utils.PrintLogInfo(&name, 404, "Purchase", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to purchase",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "Purchase", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to purchase",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "Purchase", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bundle purchased",
	})
}

func (h *StudentHandler) EnrolledCourses(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "EnrolledCourses", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to fetch enrolled courses",
		})
		return
	}

	courses, err := h.entitlementUC.EnrolledCourses(c.Request.Context(), userID)
	if err != nil {
		utils.PrintLogInfo(&name, 500, "EnrolledCourses", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch enrolled courses",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "EnrolledCourses", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    courses,
	})
}

func (h *StudentHandler) PurchasedBundles(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "PurchasedBundles", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to fetch purchased bundles",
		})
		return
	}

	bundles, err := h.entitlementUC.PurchasedBundles(c.Request.Context(), userID)
	if err != nil {
		utils.PrintLogInfo(&name, 500, "PurchasedBundles", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch purchased bundles",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "PurchasedBundles", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bundles,
	})
}

func (h *StudentHandler) IsEnrolled(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "IsEnrolled", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to check enrollment",
		})
		return
	}

	enrolled, err := h.entitlementUC.IsEnrolled(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(&name, 500, "IsEnrolled", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to check enrollment",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "IsEnrolled", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"courseId": c.Param("id"),
			"enrolled": enrolled,
		},
	})
}

func (h *StudentHandler) IsPurchased(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.PrintLogInfo(&name, 401, "IsPurchased", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to check purchase",
		})
		return
	}

	purchased, err := h.entitlementUC.IsPurchased(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(&name, 500, "IsPurchased", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to check purchase",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "IsPurchased", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"bundleId":  c.Param("id"),
			"purchased": purchased,
		},
	})
}
