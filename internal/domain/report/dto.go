package report

// ContentTypeXLSX is the media type of generated workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export is a generated file ready to be streamed to the client.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}
