package handlers

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/internal/api/presenters"
	"Recipe-Catalog/internal/middleware"
	"Recipe-Catalog/pkg/user"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type (
	UserHandler interface {
		RegisterPage(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		LoginPage(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
		sessions    *session.Store
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate, sessions *session.Store) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
		sessions:    sessions,
	}
}

func (h *userHandler) RegisterPage(c *fiber.Ctx) error {
	flash := middleware.ConsumeFlash(c, h.sessions)
	return presenters.SuccessResponse(c, fiber.Map{"flash": flash}, fiber.StatusOK, "register")
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		if isJSONRequest(c) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
		}
		middleware.AddFlash(c, h.sessions, err.Error(), "danger")
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			if isJSONRequest(c) {
				return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRegister, err)
			}
			middleware.AddFlash(c, h.sessions, err.Error(), "danger")
			return c.Redirect("/register", fiber.StatusSeeOther)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}

	if isJSONRequest(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
	}
	middleware.AddFlash(c, h.sessions, domain.MessageSuccessRegister, "success")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *userHandler) LoginPage(c *fiber.Ctx) error {
	flash := middleware.ConsumeFlash(c, h.sessions)
	return presenters.SuccessResponse(c, fiber.Map{"flash": flash}, fiber.StatusOK, "login")
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsInvalid) {
			if isJSONRequest(c) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
			}
			// Re-render the login page with the error, matching the form flow.
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, err.Error(), err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	sess, err := h.sessions.Get(c)
	if err == nil {
		sess.Set("user_id", res.UserID)
		sess.Set("username", res.Username)
		if err := sess.Save(); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
		}
	}

	if isJSONRequest(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
	}
	middleware.AddFlash(c, h.sessions, domain.MessageSuccessLogin, "success")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}
	middleware.AddFlash(c, h.sessions, domain.MessageSuccessLogout, "info")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProcessRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "success get profile")
}
