package config_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/Pneumaticat/bridge/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("ServerConfig", func() {
	It("accepts a numeric port and a leading-slash mount", func() {
		cfg := ServerConfig{Port: "8080", Mount: "/br"}
		Expect(Validate(&cfg)).To(BeNil())
	})

	It("rejects a non-numeric port", func() {
		cfg := ServerConfig{Port: "abc", Mount: "/br"}
		Expect(Validate(&cfg)).NotTo(BeNil())
	})

	It("rejects a mount path without a leading slash", func() {
		cfg := ServerConfig{Port: "8080", Mount: "br"}
		Expect(Validate(&cfg)).NotTo(BeNil())
	})
})

var _ = Describe("ClientConfig", func() {
	It("accepts a well-formed set of arguments", func() {
		cfg := ClientConfig{
			Local:      "8022",
			BridgeURL:  "http://127.0.0.1:8080/br",
			RemoteHost: "127.0.0.1",
			RemotePort: "9000",
		}
		Expect(Validate(&cfg)).To(BeNil())
	})

	It("rejects a malformed bridge URL", func() {
		cfg := ClientConfig{
			Local:      "8022",
			BridgeURL:  "not-a-url",
			RemoteHost: "127.0.0.1",
			RemotePort: "9000",
		}
		Expect(Validate(&cfg)).NotTo(BeNil())
	})
})
