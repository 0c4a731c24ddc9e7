package controllers

import (
	"context"
	"os"
	"strings"

	"hoteldesk/dto"
	"hoteldesk/models"
	"hoteldesk/response"
	"hoteldesk/services"
	"hoteldesk/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) AuthController {
	return AuthController{DB: db}
}

func convertToStaffResponse(staff models.Staff) dto.StaffLoginResponse {
	return dto.StaffLoginResponse{
		StaffID:    staff.ID,
		StaffName:  staff.Name,
		StaffEmail: staff.Email,
		StaffPhone: staff.PhoneNumber,
		StaffRole:  staff.Role,
		CreatedAt:  staff.CreatedAt,
		UpdatedAt:  staff.UpdatedAt,
	}
}

// Login authenticates a staff account by email or phone
func (ac AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var staff models.Staff
	if err := ac.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&staff).Error; err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: staff.ID,
		Role:   staff.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"staff_info":  convertToStaffResponse(staff),
		"accessToken": accessToken,
	})
}

// Register creates a staff account
func (ac AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	staff := models.Staff{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}

	if err := validator.ValidateStaff(&staff); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var existing models.Staff
	if err := ac.DB.Where("email = ?", staff.Email).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(staff.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	staff.Password = string(hashedPassword)

	if err := ac.DB.Create(&staff).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToStaffResponse(staff))
}

// Logout clears the auth cookies
func (ac AuthController) Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenId, clientID)
}

// AuthGoogle signs a staff member in with a Google ID token. The
// account must already exist; sign-in does not create staff.
func (ac AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	var staff models.Staff
	if err := ac.DB.Where("email = ?", strings.ToLower(email)).First(&staff).Error; err != nil {
		response.Forbidden(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: staff.ID,
		Role:   staff.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"staff_info":  convertToStaffResponse(staff),
		"accessToken": accessToken,
	})
}
