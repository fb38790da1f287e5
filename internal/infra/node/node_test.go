package node_test

import (
	"smokeguard-server/internal/infra/node"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.CommitHash).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should return a valid UUID for node ID", func() {
			nodeInfo := node.GetNodeInfo()
			gomega.Expect(len(nodeInfo.ID)).To(gomega.Equal(36)) // UUID length
		})

		ginkgo.It("should return the same node ID on multiple calls (singleton)", func() {
			nodeInfo1 := node.GetNodeInfo()
			nodeInfo2 := node.GetNodeInfo()
			gomega.Expect(nodeInfo1.ID).To(gomega.Equal(nodeInfo2.ID))
		})
	})

	ginkgo.Context("ClientID", func() {
		ginkgo.It("should prefix a short node id", func() {
			clientID := node.ClientID("smokeguard-server")

			gomega.Expect(clientID).To(gomega.HavePrefix("smokeguard-server-"))
			gomega.Expect(strings.TrimPrefix(clientID, "smokeguard-server-")).To(gomega.HaveLen(8))
		})

		ginkgo.It("should be stable within the process", func() {
			gomega.Expect(node.ClientID("a")).To(gomega.Equal(node.ClientID("a")))
			gomega.Expect(node.GetNodeInfo().ID).To(gomega.HavePrefix(strings.TrimPrefix(node.ClientID("a"), "a-")))
		})
	})
})
