package findbar

import "findbar/internal/domain"

// HostParamsMsg carries an inbound host payload onto the UI loop
type HostParamsMsg struct {
	owner  string
	Params domain.HostParams
}

// statusMessageMsg is a finished status message render
type statusMessageMsg struct {
	owner string
	gen   uint64
	text  string
	err   error
}

// resultsCountMsg is a finished match counter render
type resultsCountMsg struct {
	owner string
	gen   uint64
	text  string
	total int
	err   error
}
