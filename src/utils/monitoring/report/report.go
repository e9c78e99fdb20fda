package report

type Report struct {
	Run *RunReport `json:"run,omitempty"`
	Api *ApiReport `json:"api,omitempty"`
}
