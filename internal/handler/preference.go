package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/24svcs/svcs-api/internal/middleware"
	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/service"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/pkg/response"
)

// GetPreferences 查询组织偏好
// GET /v1/organizations/:organization_id/preferences
func GetPreferences(ctx context.Context, c *app.RequestContext) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return
	}

	prefs, err := service.Preference().Get(ctx, orgID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, toPreferencesData(prefs))
}

// UpdatePreferences 更新组织偏好
// PUT /v1/organizations/:organization_id/preferences
func UpdatePreferences(ctx context.Context, c *app.RequestContext) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return
	}

	var req model.UpdatePreferencesRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	prefs, err := service.Preference().Update(ctx, orgID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, toPreferencesData(prefs))
}

func toPreferencesData(prefs *model.OrganizationPreferences) model.PreferencesData {
	return model.PreferencesData{
		Timezone:       prefs.Timezone,
		GraceMinutes:   prefs.GraceMinutes,
		AlertOnLate:    prefs.AlertOnLate,
		AlertOnHalfDay: prefs.AlertOnHalfDay,
	}
}
