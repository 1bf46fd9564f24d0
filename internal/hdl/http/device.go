package http

import (
	"net/http"

	"github.com/JMURv/bloggers-auth/internal/hdl"
	mid "github.com/JMURv/bloggers-auth/internal/hdl/http/middleware"
	"github.com/JMURv/bloggers-auth/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	ot "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (h *Handler) RegisterDeviceRoutes() {
	h.Router.Route(
		"/security/devices", func(r chi.Router) {
			r.Use(mid.Refresh(h.ctrl))
			r.Get("/", h.listDevices)
			r.Delete("/", h.terminateOtherDevices)
			r.Delete("/{id}", h.terminateDevice)
		},
	)
}

// listDevices godoc
//
//	@Summary	List active device sessions
//	@Tags		Devices
//	@Produce	json
//	@Param		Cookie	header	string	true	"refreshToken cookie"
//	@Success	200		{array}		dto.DeviceResponse
//	@Failure	401		{object}	utils.ErrorsResponse
//	@Router		/security/devices [get]
func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	const op = "devices.listDevices.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	uid, ok := utils.UIDFromContext(ctx)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error(), zap.String("op", op))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	res, err := h.ctrl.ListDevices(ctx, uid)
	if err != nil {
		errResponse(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// terminateOtherDevices godoc
//
//	@Summary	Terminate every session except the current one
//	@Tags		Devices
//	@Param		Cookie	header	string	true	"refreshToken cookie"
//	@Success	204
//	@Failure	401	{object}	utils.ErrorsResponse
//	@Router		/security/devices [delete]
func (h *Handler) terminateOtherDevices(w http.ResponseWriter, r *http.Request) {
	const op = "devices.terminateOtherDevices.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	s, ok := utils.SessionFromContext(ctx)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetSession.Error(), zap.String("op", op))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.TerminateOtherDevices(ctx, s); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// terminateDevice godoc
//
//	@Summary	Terminate a device session
//	@Tags		Devices
//	@Param		Cookie	header	string	true	"refreshToken cookie"
//	@Param		id		path	string	true	"Device ID"
//	@Success	204
//	@Failure	401	{object}	utils.ErrorsResponse
//	@Failure	403	{object}	utils.ErrorsResponse
//	@Failure	404	{object}	utils.ErrorsResponse
//	@Router		/security/devices/{id} [delete]
func (h *Handler) terminateDevice(w http.ResponseWriter, r *http.Request) {
	const op = "devices.terminateDevice.hdl"
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer span.Finish()

	deviceID := chi.URLParam(r, "id")
	if deviceID == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	uid, ok := utils.UIDFromContext(ctx)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error(), zap.String("op", op))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.TerminateDevice(ctx, uid, deviceID); err != nil {
		errResponse(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
