package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pcmclub/pcm-api/config"
	"github.com/pcmclub/pcm-api/internal/member"
	"github.com/pcmclub/pcm-api/internal/middleware"
	"github.com/pcmclub/pcm-api/internal/user"
	"github.com/pcmclub/pcm-api/pkg/token"
	"github.com/pcmclub/pcm-api/pkg/validator"
	"github.com/pcmclub/pcm-api/utils"
)

const (
	DefaultUserRole       = "Member"
	refreshTokenValidDays = 30
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) issueTokens(u *user.User, roles []string) (string, string, error) {
	accessToken, err := token.GenerateJWT(u.ID, u.Email, u.FullName, roles, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		return "", "", err
	}

	refreshToken := &user.RefreshToken{
		UserID:    u.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().AddDate(0, 0, refreshTokenValidDays),
	}
	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken.Token, nil
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user account with the Member role and a linked club member profile starting at rank 3.0.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      201   {object} AuthResponse
// @Failure      400   {object} map[string]string "Validation error"
// @Failure      409   {object} map[string]string "Email already registered"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": validator.ParseError(err)})
		return
	}

	if _, err := ac.repo.GetUserByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	u := &user.User{
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
	}
	m := &member.Member{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
		JoinDate:    time.Now(),
		RankLevel:   3.0,
		Status:      member.StatusActive,
	}

	if err := ac.repo.CreateUserWithMember(u, m, DefaultUserRole); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	roles := []string{DefaultUserRole}
	accessToken, refreshToken, err := ac.issueTokens(u, roles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		UserID:       u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Roles:        roles,
		MemberID:     &m.ID,
	})
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} AuthResponse
// @Failure      401  {object} map[string]string "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": validator.ParseError(err)})
		return
	}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	roles, err := ac.repo.GetUserRoles(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user roles"})
		return
	}

	accessToken, refreshToken, err := ac.issueTokens(u, roles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	resp := AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		UserID:       u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Roles:        roles,
	}
	if m, err := ac.repo.GetMemberByUserID(u.ID); err == nil {
		resp.MemberID = &m.ID
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200  {object} AuthResponse
// @Failure      401  {object} map[string]string "Invalid or expired refresh token"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": validator.ParseError(err)})
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	u, err := ac.repo.GetUserByID(stored.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
		return
	}

	roles, err := ac.repo.GetUserRoles(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user roles"})
		return
	}

	// Rotate: the used refresh token is revoked and a fresh one issued.
	if err := ac.repo.InvalidateRefreshToken(stored.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rotate refresh token"})
		return
	}

	accessToken, refreshToken, err := ac.issueTokens(u, roles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		UserID:       u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Roles:        roles,
	})
}

// GetProfile godoc
// @Summary      Get the current user's info
// @Tags         auth
// @Produce      json
// @Success      200  {object} UserInfoResponse
// @Failure      401  {object} map[string]string
// @Router       /auth/me [get]
// @Security     Bearer
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	roles, err := ac.repo.GetUserRoles(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user roles"})
		return
	}

	resp := UserInfoResponse{
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Roles:    roles,
	}
	if m, err := ac.repo.GetMemberByUserID(u.ID); err == nil {
		resp.MemberID = &m.ID
		resp.RankLevel = &m.RankLevel
	}

	c.JSON(http.StatusOK, resp)
}
