package webapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstall_DownloadsIconAndWritesDescriptor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icon.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("PNGDATA"))
	}))
	defer srv.Close()

	apps := filepath.Join(t.TempDir(), "applications")
	res, err := Install(context.Background(), InstallOptions{
		Name:      "Mail",
		URL:       "https://mail.example.com",
		Icon:      srv.URL + "/icon.png",
		MimeTypes: "x-scheme-handler/mailto;",
		AppsDir:   apps,
		Client:    srv.Client(),
	})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	icon, err := os.ReadFile(res.IconPath)
	if err != nil || string(icon) != "PNGDATA" {
		t.Fatalf("icon = %q, %v", icon, err)
	}
	if res.IconPath != filepath.Join(apps, "icons", "Mail.png") {
		t.Fatalf("icon path = %s", res.IconPath)
	}

	body, err := os.ReadFile(res.DesktopPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"[Desktop Entry]\n",
		"Name=Mail\n",
		"Comment=Mail Web App\n",
		"Exec=web-app-run https://mail.example.com\n",
		"Icon=" + res.IconPath + "\n",
		"MimeType=x-scheme-handler/mailto;\n",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("descriptor missing %q:\n%s", want, body)
		}
	}

	info, err := os.Stat(res.DesktopPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}
}

func TestInstall_DownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	apps := filepath.Join(t.TempDir(), "applications")
	_, err := Install(context.Background(), InstallOptions{
		Name: "Mail", URL: "https://x", Icon: srv.URL + "/icon.png", AppsDir: apps, Client: srv.Client(),
	})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(apps, "Mail.desktop")); !os.IsNotExist(err) {
		t.Fatal("descriptor must not be written when the icon fails")
	}
}

func TestInstall_CopiesLocalIcon(t *testing.T) {
	src := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(src, []byte("LOCAL"), 0o600); err != nil {
		t.Fatal(err)
	}
	apps := filepath.Join(t.TempDir(), "applications")
	res, err := Install(context.Background(), InstallOptions{Name: "Chat", URL: "https://chat", Icon: src, AppsDir: apps})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	b, _ := os.ReadFile(res.IconPath)
	if string(b) != "LOCAL" {
		t.Fatalf("icon = %q", b)
	}
	body, _ := os.ReadFile(res.DesktopPath)
	if strings.Contains(string(body), "MimeType=") {
		t.Fatal("MimeType must be omitted when empty")
	}
}

func TestInstall_Validation(t *testing.T) {
	apps := t.TempDir()
	cases := []InstallOptions{
		{URL: "u", Icon: "i", AppsDir: apps},
		{Name: "a/b", URL: "u", Icon: "i", AppsDir: apps},
		{Name: "a", Icon: "i", AppsDir: apps},
		{Name: "a", URL: "u", AppsDir: apps},
		{Name: "a", URL: "u", Icon: "i"},
	}
	for i, c := range cases {
		if _, err := Install(context.Background(), c); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
