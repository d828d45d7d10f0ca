package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/response"
	"github.com/24svcs/svcs-api/storage/database"

	apperrors "github.com/24svcs/svcs-api/pkg/errors"
)

const organizationKey = "organization_id"

// OrganizationMiddleware 校验路径中的组织并写入请求上下文
// 组织不存在或已停用时直接 404，后续 handler 不再重复校验
func OrganizationMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		orgID := c.Param("organization_id")
		if _, err := uuid.Parse(orgID); err != nil {
			c.Abort()
			response.Error(ctx, c, apperrors.OrganizationNotFound)
			return
		}

		orgs := repository.NewOrganizationRepo(database.DB())
		org, err := orgs.GetByID(ctx, orgID)
		if err != nil {
			c.Abort()
			response.Error(ctx, c, err)
			return
		}
		if org == nil || org.Status != model.OrganizationStatusActive {
			c.Abort()
			response.Error(ctx, c, apperrors.OrganizationNotFound)
			return
		}

		c.Set(organizationKey, org.ID)
		c.Next(ctx)
	}
}

// GetOrganizationID 从请求上下文中获取组织ID
func GetOrganizationID(ctx context.Context, c *app.RequestContext) (string, bool) {
	orgID, exists := c.Get(organizationKey)
	if !exists {
		return "", false
	}

	id, ok := orgID.(string)
	if !ok {
		return "", false
	}
	return id, true
}
