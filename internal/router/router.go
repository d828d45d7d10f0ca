package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/24svcs/svcs-api/internal/handler"
	"github.com/24svcs/svcs-api/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	{
		auth.POST("/token/refresh", handler.RefreshToken)
	}

	// 组织作用域路由，所有考勤数据都挂在组织下
	orgs := v1.Group("/organizations/:organization_id")
	orgs.Use(middleware.AuthMiddleware())
	orgs.Use(middleware.GeneralRateLimitMiddleware())
	orgs.Use(middleware.OrganizationMiddleware())
	{
		// 组织偏好
		orgs.GET("/preferences", handler.GetPreferences)
		orgs.PUT("/preferences", middleware.RequireAdmin(), handler.UpdatePreferences)

		// 员工
		employees := orgs.Group("/employees")
		{
			employees.POST("", middleware.RequireAdmin(), handler.CreateEmployee)
			employees.GET("", handler.ListEmployees)
			employees.GET("/:employee_id", handler.GetEmployee)
		}

		// 考勤
		attendances := orgs.Group("/attendances")
		{
			attendances.POST("/check-in-out", middleware.CheckInRateLimitMiddleware(), handler.CheckInOut)
			attendances.GET("", handler.ListAttendances)
			attendances.GET("/:attendance_id", handler.GetAttendance)
			attendances.PATCH("/:attendance_id", middleware.RequireAdmin(), handler.UpdateAttendance)
			attendances.DELETE("/:attendance_id", middleware.RequireAdmin(), handler.DeleteAttendance)
		}
	}
}
