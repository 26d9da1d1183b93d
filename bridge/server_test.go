package bridge_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/Pneumaticat/bridge/bridge"
)

var _ = Describe("HTTP endpoint", func() {
	var (
		table    *Table
		srv      *httptest.Server
		destAddr string
		closeDst func()
	)

	BeforeEach(func() {
		destAddr, closeDst = newEchoServer()
		table = NewTable()
		srv = httptest.NewServer(NewRouter(table, "/br"))
	})

	AfterEach(func() {
		srv.Close()
		closeDst()
	})

	It("opens, writes, reads and closes a tunnel end to end", func() {
		url := srv.URL + "/br/e2e-1"

		res, err := http.Post(url, "text/plain", strings.NewReader(destAddr))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusCreated))

		req, _ := http.NewRequest(http.MethodPut, url, strings.NewReader("hello\n"))
		res, err = http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusOK))

		res, err = http.Get(url)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		body, _ := io.ReadAll(res.Body)
		Expect(string(body)).To(Equal("hello\n"))

		req, _ = http.NewRequest(http.MethodDelete, url, nil)
		res, err = http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		Expect(table.Len()).To(Equal(0))
	})

	It("rejects opening onto an unreachable destination with a diagnostic body", func() {
		url := srv.URL + "/br/e2e-2"
		res, err := http.Post(url, "text/plain", strings.NewReader("127.0.0.1:1"))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusNotAcceptable))
		body, _ := io.ReadAll(res.Body)
		Expect(body).NotTo(BeEmpty())
	})

	It("404s PUT/GET against an unknown id", func() {
		url := srv.URL + "/br/never-opened"

		req, _ := http.NewRequest(http.MethodPut, url, strings.NewReader("x"))
		res, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusNotFound))

		res, err = http.Get(url)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("409s a second open against a live id", func() {
		url := srv.URL + "/br/e2e-3"
		res, err := http.Post(url, "text/plain", strings.NewReader(destAddr))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusCreated))

		res, err = http.Post(url, "text/plain", strings.NewReader(destAddr))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusConflict))
	})

	It("410s and removes the entry once the destination closes", func() {
		url := srv.URL + "/br/e2e-4"
		res, err := http.Post(url, "text/plain", strings.NewReader(destAddr))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusCreated))

		closeDst()

		Eventually(func() int {
			res, err := http.Get(url)
			if err != nil {
				return -1
			}
			return res.StatusCode
		}).Should(Equal(http.StatusGone))

		Expect(table.Len()).To(Equal(0))
	})
})
