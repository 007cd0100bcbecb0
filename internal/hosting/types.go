package hosting

import "encoding/json"

// Config represents hosting API settings. The key is server-held and is
// attached only inside request construction, never in any response.
type Config struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
}

// Envelope is the hosting API's standard response wrapper. Raw carries
// the unmodified upstream body so proxy handlers can pass it through.
type Envelope struct {
	Msg        string          `json:"msg"`
	ServerTime string          `json:"server_time"`
	Status     int             `json:"status"`
	Result     json.RawMessage `json:"result"`

	Raw []byte `json:"-"`
}

// File describes one hosted video file as reported by the hosting API
type File struct {
	Thumbnail string `json:"thumbnail"`
	Link      string `json:"link"`
	FileCode  string `json:"file_code"`
	CanPlay   int    `json:"canplay"`
	Length    string `json:"length"`
	Views     string `json:"views"`
	Uploaded  string `json:"uploaded"`
	Public    string `json:"public"`
	FolderID  string `json:"fld_id"`
	Title     string `json:"title"`
}

// FileListResult is the decoded result of a file/list call
type FileListResult struct {
	Files        []File `json:"files"`
	ResultsTotal int    `json:"results_total"`
	Pages        int    `json:"pages"`
	Results      int    `json:"results"`
}

// FileList decodes the file/list result payload
func (e *Envelope) FileList() (*FileListResult, error) {
	var result FileListResult
	if err := json.Unmarshal(e.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadServerURL decodes the upload/server result payload
func (e *Envelope) UploadServerURL() (string, error) {
	var url string
	if err := json.Unmarshal(e.Result, &url); err != nil {
		return "", err
	}
	return url, nil
}

// ProgressFunc receives incremental upload progress notifications
type ProgressFunc func(transferred, total int64)

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}
