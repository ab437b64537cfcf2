package bootstrap

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/fulldump/usersvc/configuration"
)

func freeAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	return ln.Addr().String()
}

func TestBootstrap(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = freeAddr(t)
	c.EnableAccessLog = false

	start, stop, err := Bootstrap(c)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	done := make(chan struct{})
	go func() {
		start()
		close(done)
	}()

	base := "http://" + c.HttpAddr

	var resp *http.Response
	for i := 0; i < 100; i++ {
		resp, err = http.Post(base+"/user/", "text/plain", nil)
		if err == nil && resp.StatusCode == http.StatusOK {
			break
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if string(body) != "0" {
		t.Fatalf("expected id 0, got %q", body)
	}

	stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("start did not return after stop")
	}
}

func TestBootstrap_BadStatics(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = freeAddr(t)
	c.Statics = t.TempDir() // no index.html inside

	_, _, err := Bootstrap(c)
	if err == nil {
		t.Fatalf("expected error")
	}
}
