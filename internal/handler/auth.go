package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/pkg/response"
	"github.com/24svcs/svcs-api/pkg/token"
)

// RefreshToken 刷新访问令牌
// POST /v1/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req model.RefreshTokenRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	userID, role, err := token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(userID, role)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, model.TokenPairData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	})
}
