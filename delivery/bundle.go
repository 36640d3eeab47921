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

type BundleHandler struct {
	bundleUC domain.BundleUseCase
}

func NewBundleHandler(r *gin.Engine, bundleUC domain.BundleUseCase, jwtManager *utils.JWTManager) {
	handler := &BundleHandler{bundleUC: bundleUC}

	r.GET("/bundles", handler.List)
	r.GET("/bundles/:id", handler.GetByID)

	// Bundling is the marketer's job.
	marketer := r.Group("/bundles")
	marketer.Use(config.AuthMiddleware(jwtManager), middleware.RoleOnly(domain.RoleMarketer))
	{
		marketer.POST("", handler.Create)
		marketer.PUT("/:id", handler.Update)
		marketer.DELETE("/:id", handler.Delete)
	}
}

func (h *BundleHandler) List(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	bundles, err := h.bundleUC.List(c.Request.Context())
	if err != nil {
		utils.PrintLogInfo(&name, 500, "ListBundles", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch bundles",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "ListBundles", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bundles,
	})
}

func (h *BundleHandler) GetByID(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	bundle, err := h.bundleUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBundleNotFound) {
			utils.PrintLogInfo(&name, 404, "GetBundle", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to fetch bundle",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "GetBundle", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch bundle",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "GetBundle", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bundle,
	})
}

func (h *BundleHandler) Create(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.CreateBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "CreateBundle", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to create bundle",
		})
		return
	}

	bundle := dto.MapCreateBundleRequest(&req)
	if err := h.bundleUC.Create(c.Request.Context(), &bundle); err != nil {
		utils.PrintLogInfo(&name, 500, "CreateBundle", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to create bundle",
		})
		return
	}

	utils.PrintLogInfo(&name, 201, "CreateBundle", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    bundle,
	})
}

func (h *BundleHandler) Update(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdateBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "UpdateBundle", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to update bundle",
		})
		return
	}

	bundle, err := h.bundleUC.Update(c.Request.Context(), c.Param("id"), dto.MapUpdateBundleRequest(&req))
	if err != nil {
		if errors.Is(err, domain.ErrBundleNotFound) {
			utils.PrintLogInfo(&name, 404, "UpdateBundle", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to update bundle",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "UpdateBundle", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to update bundle",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "UpdateBundle", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bundle,
	})
}

func (h *BundleHandler) Delete(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if err := h.bundleUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.PrintLogInfo(&name, 500, "DeleteBundle", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to delete bundle",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "DeleteBundle", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bundle deleted",
	})
}
