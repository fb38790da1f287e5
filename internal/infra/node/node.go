package node

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Node describes the running server instance
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
}

var Version = "development"
var CommitHash = "unknown"

var (
	nodeID       string
	nodeIDOnce   sync.Once
	hostname     string
	hostnameOnce sync.Once
)

func GetNodeInfo() *Node {
	return &Node{
		ID:         getNodeID(),
		Hostname:   getHostname(),
		Version:    Version,
		CommitHash: CommitHash,
	}
}

// ClientID derives a broker client id that stays stable for the life of the
// process and differs between replicas.
func ClientID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, getNodeID()[:8])
}

func getNodeID() string {
	nodeIDOnce.Do(func() {
		nodeID = uuid.NewString()
	})
	return nodeID
}

func getHostname() string {
	hostnameOnce.Do(func() {
		name, err := os.Hostname()
		if err != nil || name == "" {
			name = "localhost"
		}
		hostname = name
	})
	return hostname
}
