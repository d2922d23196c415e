package consts

const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
	MIMEJSON        = "application/json"
	MIMEHTML        = "text/html"
	MIMECSS         = "text/css"
	MIMECSV         = "text/csv"
	MIMEJavaScript  = "text/javascript"
	MIMEXML         = "text/xml"
)

const (
	ContentTypeJSON = MIMEJSON
	ContentTypeText = MIMETextPlain + "; charset=utf-8"
	ContentTypeHTML = MIMEHTML + "; charset=utf-8"
)
