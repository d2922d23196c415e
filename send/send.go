// Package send builds endpoint Results with the right content type.
package send

import (
	"encoding/json"
	"net/http"

	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/consts"
)

// JSON encodes the object in JSON format with the content type set to `application/json`.
func JSON(status int, object any) (rroute.Result, error) {
	body, err := json.Marshal(object)
	if err != nil {
		return rroute.Result{}, err
	}
	return Bytes(status, consts.ContentTypeJSON, body), nil
}

// Text sends the body with the content type set to `text/plain`.
func Text(status int, body string) rroute.Result {
	return Bytes(status, consts.ContentTypeText, []byte(body))
}

// HTML sends the body with the content type set to `text/html`.
func HTML(status int, body string) rroute.Result {
	return Bytes(status, consts.ContentTypeHTML, []byte(body))
}

// CSS sends the body with the content type set to `text/css`.
func CSS(status int, body string) rroute.Result {
	return Bytes(status, consts.MIMECSS, []byte(body))
}

// CSV sends the body with the content type set to `text/csv`.
func CSV(status int, body string) rroute.Result {
	return Bytes(status, consts.MIMECSV, []byte(body))
}

// JS sends the body with the content type set to `text/javascript`.
func JS(status int, body string) rroute.Result {
	return Bytes(status, consts.MIMEJavaScript, []byte(body))
}

// XML sends the body with the content type set to `text/xml`.
func XML(status int, body string) rroute.Result {
	return Bytes(status, consts.MIMEXML, []byte(body))
}

// Bytes sends the raw body with the given content type.
func Bytes(status int, contentType string, body []byte) rroute.Result {
	return rroute.Result{
		Status:  status,
		Headers: []rroute.Header{{Key: consts.HeaderContentType, Value: contentType}},
		Body:    body,
	}
}

// NoContent is an empty 204 response.
func NoContent() rroute.Result {
	return rroute.Result{Status: http.StatusNoContent}
}

// Error returns an application error carrying status and message.
// The dispatcher answers it with {"message": message}.
func Error(status int, message string) error {
	return rroute.NewError(status, message)
}
