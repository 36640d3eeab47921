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

type CourseHandler struct {
	courseUC domain.CourseUseCase
}

func NewCourseHandler(r *gin.Engine, courseUC domain.CourseUseCase, jwtManager *utils.JWTManager) {
	handler := &CourseHandler{courseUC: courseUC}

	// Catalog browsing is public.
	r.GET("/courses", handler.List)
	r.GET("/courses/:id", handler.GetByID)

	// Authoring is educator-only.
	educator := r.Group("/courses")
	educator.Use(config.AuthMiddleware(jwtManager), middleware.RoleOnly(domain.RoleEducator))
	{
		educator.POST("", handler.Create)
		educator.PUT("/:id", handler.Update)
		educator.DELETE("/:id", handler.Delete)
	}
}

func (h *CourseHandler) List(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	courses, err := h.courseUC.List(c.Request.Context())
	if err != nil {
		utils.PrintLogInfo(&name, 500, "ListCourses", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch courses",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "ListCourses", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    courses,
	})
}

func (h *CourseHandler) GetByID(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	course, err := h.courseUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			utils.PrintLogInfo(&name, 404, "GetCourse", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to fetch course",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "GetCourse", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to fetch course",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "GetCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    course,
	})
}

func (h *CourseHandler) Create(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "CreateCourse", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to create course",
		})
		return
	}

	course := dto.MapCreateCourseRequest(&req)
	if err := h.courseUC.Create(c.Request.Context(), &course); err != nil {
		utils.PrintLogInfo(&name, 500, "CreateCourse", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to create course",
		})
		return
	}

	utils.PrintLogInfo(&name, 201, "CreateCourse", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    course,
	})
}

func (h *CourseHandler) Update(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "UpdateCourse", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to update course",
		})
		return
	}

	course, err := h.courseUC.Update(c.Request.Context(), c.Param("id"), dto.MapUpdateCourseRequest(&req))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			utils.PrintLogInfo(&name, 404, "UpdateCourse", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to update course",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "UpdateCourse", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to update course",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "UpdateCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    course,
	})
}

func (h *CourseHandler) Delete(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if err := h.courseUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.PrintLogInfo(&name, 500, "DeleteCourse", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
			"message": "Failed to delete course",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "DeleteCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course deleted",
	})
}
