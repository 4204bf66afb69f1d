package reply

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/structs"
	"maison/pkg/logger"
)

var Module = fx.Invoke(New)

var iLogger = logger.NewNop()

type Params struct {
	fx.In
	Logger logger.Logger
}

func New(params Params) {
	iLogger = params.Logger
}

func Json(w http.ResponseWriter, status int, data interface{}) {
	reply, err := json.Marshal(data)
	if err != nil {
		iLogger.Error(context.TODO(), "err on json.Marshal", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(reply)
}

// Response writes the envelope with its own status code as the HTTP status.
func Response(w http.ResponseWriter, response *structs.Response) {
	status := response.Status.Code
	if status == 0 {
		status = http.StatusOK
	}
	Json(w, status, response)
}

func Bytes(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		iLogger.Warn(context.TODO(), "err on write", zap.Error(err))
	}
}
