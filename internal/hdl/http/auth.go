package http

import (
	"net/http"

	"github.com/JMURv/bloggers-auth/internal/auth/throttle"
	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/JMURv/bloggers-auth/internal/hdl"
	mid "github.com/JMURv/bloggers-auth/internal/hdl/http/middleware"
	"github.com/JMURv/bloggers-auth/internal/hdl/http/utils"
	ot "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes() {
	h.Router.With(mid.Attempts(h.ctrl, throttle.Login), mid.Device).Post("/auth/login", h.login)
	h.Router.With(mid.Refresh(h.ctrl), mid.Device).Post("/auth/refresh-token", h.refresh)
	h.Router.With(mid.Refresh(h.ctrl)).Post("/auth/logout", h.logout)
	h.Router.With(mid.Auth(h.au)).Get("/auth/me", h.me)

	h.Router.With(mid.Attempts(h.ctrl, throttle.Registration)).Post("/auth/registration", h.register)
	h.Router.With(mid.Attempts(h.ctrl, throttle.RegistrationConfirm)).
		Post("/auth/registration-confirmation", h.confirmRegistration)
	h.Router.With(mid.Attempts(h.ctrl, throttle.RegistrationResend)).
		Post("/auth/registration-email-resending", h.resendConfirmation)
	h.Router.With(mid.Attempts(h.ctrl, throttle.PasswordRecovery)).Post("/auth/password-recovery", h.recoverPassword)
	h.Router.With(mid.Attempts(h.ctrl, throttle.NewPassword)).Post("/auth/new-password", h.newPassword)
}

// login godoc
//
//	@Summary		Log in with login or email and password
//	@Description	Starts a new device session. The refresh token is set as an HTTP-only cookie.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			User-Agent	header		string				false	"Device label"
//	@Param			body		body		dto.LoginRequest	true	"Credentials"
//	@Success		200			{object}	dto.AccessTokenResponse
//	@Failure		400			{object}	dto.FieldErrorsResponse
//	@Failure		401			{object}	utils.ErrorsResponse
//	@Failure		429			"too many attempts"
//	@Failure		500			{object}	utils.ErrorsResponse
//	@Router			/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	d, ok := utils.ParseDeviceByRequest(ctx)
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	req := &dto.LoginRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(ctx, &d, req)
	if err != nil {
		errResponse(w, op, err)
		return
	}

	utils.SetRefreshCookie(w, res.Refresh, res.RefreshExpiresAt, h.secureCookie)
	utils.SuccessResponse(w, http.StatusOK, &dto.AccessTokenResponse{AccessToken: res.Access})
}

// refresh godoc
//
//	@Summary		Rotate the refresh token
//	@Description	Issues a new token pair. The presented refresh token can not be used again.
//	@Tags			Authentication
//	@Produce		json
//	@Param			Cookie	header		string	true	"refreshToken cookie"
//	@Success		200		{object}	dto.AccessTokenResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/auth/refresh-token [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	const op = "auth.refresh.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	s, ok := utils.SessionFromContext(ctx)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetSession.Error(), zap.String("op", op))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	d, ok := utils.ParseDeviceByRequest(ctx)
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	res, err := h.ctrl.Refresh(ctx, &d, s)
	if err != nil {
		errResponse(w, op, err)
		return
	}

	utils.SetRefreshCookie(w, res.Refresh, res.RefreshExpiresAt, h.secureCookie)
	utils.SuccessResponse(w, http.StatusOK, &dto.AccessTokenResponse{AccessToken: res.Access})
}

// logout godoc
//
//	@Summary		Log out the current device
//	@Description	Deletes the device session and clears the refresh token cookie
//	@Tags			Authentication
//	@Param			Cookie	header	string	true	"refreshToken cookie"
//	@Success		204
//	@Failure		401	{object}	utils.ErrorsResponse
//	@Failure		500	{object}	utils.ErrorsResponse
//	@Router			/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	const op = "auth.logout.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	s, ok := utils.SessionFromContext(ctx)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetSession.Error(), zap.String("op", op))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.Logout(ctx, s); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.ClearRefreshCookie(w, h.secureCookie)
	utils.StatusResponse(w, http.StatusNoContent)
}

// me godoc
//
//	@Summary		Current user
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Success		200				{object}	dto.MeResponse
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		500				{object}	utils.ErrorsResponse
//	@Router			/auth/me [get]
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	const op = "auth.me.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	uid, ok := utils.UIDFromContext(ctx)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error(), zap.String("op", op))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	res, err := h.ctrl.GetMe(ctx, uid)
	if err != nil {
		errResponse(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// register godoc
//
//	@Summary		Register a new user
//	@Description	Creates an unconfirmed account and sends the confirmation code by email
//	@Tags			Registration
//	@Accept			json
//	@Param			body	body	dto.RegistrationRequest	true	"New user"
//	@Success		204
//	@Failure		400	{object}	dto.FieldErrorsResponse
//	@Failure		429	"too many attempts"
//	@Failure		503	{object}	utils.ErrorsResponse
//	@Router			/auth/registration [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	req := &dto.RegistrationRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.Register(ctx, req); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// confirmRegistration godoc
//
//	@Summary	Confirm registration
//	@Tags		Registration
//	@Accept		json
//	@Param		body	body	dto.ConfirmationRequest	true	"Confirmation code"
//	@Success	204
//	@Failure	400	{object}	dto.FieldErrorsResponse
//	@Failure	429	"too many attempts"
//	@Router		/auth/registration-confirmation [post]
func (h *Handler) confirmRegistration(w http.ResponseWriter, r *http.Request) {
	const op = "auth.confirmRegistration.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	req := &dto.ConfirmationRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.ConfirmRegistration(ctx, req.Code); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// resendConfirmation godoc
//
//	@Summary	Resend the confirmation code
//	@Tags		Registration
//	@Accept		json
//	@Param		body	body	dto.EmailRequest	true	"Email of an unconfirmed account"
//	@Success	204
//	@Failure	400	{object}	dto.FieldErrorsResponse
//	@Failure	429	"too many attempts"
//	@Failure	503	{object}	utils.ErrorsResponse
//	@Router		/auth/registration-email-resending [post]
func (h *Handler) resendConfirmation(w http.ResponseWriter, r *http.Request) {
	const op = "auth.resendConfirmation.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	req := &dto.EmailRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.ResendConfirmation(ctx, req.Email); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// recoverPassword godoc
//
//	@Summary		Request password recovery
//	@Description	Sends a recovery code. Responds 204 for unknown emails too.
//	@Tags			Password recovery
//	@Accept			json
//	@Param			body	body	dto.EmailRequest	true	"Account email"
//	@Success		204
//	@Failure		400	{object}	dto.FieldErrorsResponse
//	@Failure		429	"too many attempts"
//	@Failure		503	{object}	utils.ErrorsResponse
//	@Router			/auth/password-recovery [post]
func (h *Handler) recoverPassword(w http.ResponseWriter, r *http.Request) {
	const op = "auth.recoverPassword.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	req := &dto.EmailRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.RecoverPassword(ctx, req.Email); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// newPassword godoc
//
//	@Summary	Set a new password by recovery code
//	@Tags		Password recovery
//	@Accept		json
//	@Param		body	body	dto.NewPasswordRequest	true	"New password and recovery code"
//	@Success	204
//	@Failure	400	{object}	dto.FieldErrorsResponse
//	@Failure	401	{object}	utils.ErrorsResponse
//	@Failure	429	"too many attempts"
//	@Router		/auth/new-password [post]
func (h *Handler) newPassword(w http.ResponseWriter, r *http.Request) {
	const op = "auth.newPassword.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	req := &dto.NewPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.SetNewPassword(ctx, req); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
