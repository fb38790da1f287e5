package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

type ConnectivityStatus string

const (
	StatusOnline  ConnectivityStatus = "online"
	StatusOffline ConnectivityStatus = "offline"
)

func (vo ConnectivityStatus) String() string {
	return string(vo)
}

type Severity string

const (
	SeverityCritical Severity = "critical"
)
