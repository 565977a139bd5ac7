package inject

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/iconkit/internal/models"
)

const navPage = `<nav>
<a href="platform.html" class="nav-link dropdown-toggle">Platform</a>
<a href="cloud-security.html">Cloud Security</a>
</nav>`

type recordingReporter struct {
	processed []string
	results   []models.FileResult
}

func (r *recordingReporter) Processing(path string) { r.processed = append(r.processed, path) }

func (r *recordingReporter) Result(res models.FileResult) { r.results = append(r.results, res) }

func (r *recordingReporter) status(path string) models.FileStatus {
	for _, res := range r.results {
		if res.Path == path {
			return res.Status
		}
	}
	return ""
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func newTestInjector(t *testing.T, root string, rep Reporter) *Injector {
	t.Helper()
	rs, err := DefaultRules()
	require.NoError(t, err)
	return NewInjector(root, "assets/images/icons/", rs, log.New(io.Discard), rep)
}

func TestRelativePrefix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "site/index.html", want: ""},
		{path: "site/solutions/index.html", want: "../"},
		{path: "site/a/b/page.html", want: "../../"},
		{path: "site/a/b/c/page.html", want: "../../../"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := RelativePrefix("site", filepath.FromSlash(tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "site/demo.html", want: true},
		{path: "site/labs/water-animations-demo.html", want: true},
		{path: "site/portal-demo.html", want: true},
		{path: "site/demo/index.html", want: false},
		{path: "site/index.html", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExcluded(filepath.FromSlash(tt.path), DefaultExcludes))
		})
	}
}

func TestMarkerFor(t *testing.T) {
	assert.Equal(t, "icons/", MarkerFor("assets/images/icons/"))
	assert.Equal(t, "glyphs/", MarkerFor("static/glyphs"))
	assert.Equal(t, DefaultMarker, MarkerFor(""))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), "")
	writeFile(t, filepath.Join(root, "b", "page.html"), "")
	writeFile(t, filepath.Join(root, "b", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "a", "c", "deep.html"), "")
	writeFile(t, filepath.Join(root, "style.htm"), "")

	files, err := Discover(root, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "c", "deep.html"),
		filepath.Join(root, "b", "page.html"),
		filepath.Join(root, "index.html"),
	}, files)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), log.New(io.Discard))
	assert.Error(t, err)
}

func TestRunSkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	index := filepath.Join(root, "index.html")
	private := filepath.Join(root, "private")
	writeFile(t, index, navPage)
	writeFile(t, filepath.Join(private, "hidden.html"), navPage)
	require.NoError(t, os.Chmod(private, 0))
	t.Cleanup(func() { os.Chmod(private, 0755) })

	files, err := Discover(root, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, []string{index}, files)

	summary, err := newTestInjector(t, root, nil).Run()
	require.NoError(t, err)
	assert.Equal(t, models.Summary{Discovered: 1, Updated: 1}, summary)
	assert.Contains(t, readFile(t, index), "platform.png")
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	index := filepath.Join(root, "index.html")
	nested := filepath.Join(root, "solutions", "index.html")
	deep := filepath.Join(root, "a", "b", "deep.html")
	plain := filepath.Join(root, "plain.html")
	demo := filepath.Join(root, "demo.html")
	water := filepath.Join(root, "labs", "water-animations-demo.html")
	broken := filepath.Join(root, "broken.html")

	writeFile(t, index, navPage)
	writeFile(t, nested, `<a href="../solutions/" class="nav-link dropdown-toggle">Solutions</a>`)
	writeFile(t, deep, `<a href="../../services.html" class="nav-link dropdown-toggle">Services</a>`)
	writeFile(t, plain, "<p>Nothing to see</p>\n")
	writeFile(t, demo, navPage)
	writeFile(t, water, navPage)
	require.NoError(t, os.Symlink(filepath.Join(root, "missing-target"), broken))

	rep := &recordingReporter{}
	summary, err := newTestInjector(t, root, rep).Run()
	require.NoError(t, err)

	assert.Equal(t, models.Summary{Discovered: 7, Updated: 3, Unchanged: 1, Skipped: 2, Errored: 1}, summary)

	assert.Equal(t, models.StatusUpdated, rep.status(index))
	assert.Equal(t, models.StatusUpdated, rep.status(nested))
	assert.Equal(t, models.StatusUpdated, rep.status(deep))
	assert.Equal(t, models.StatusUnchanged, rep.status(plain))
	assert.Equal(t, models.StatusSkipped, rep.status(demo))
	assert.Equal(t, models.StatusSkipped, rep.status(water))
	assert.Equal(t, models.StatusErrored, rep.status(broken))

	// excluded files are never handed to the processor
	assert.NotContains(t, rep.processed, demo)
	assert.NotContains(t, rep.processed, water)
	assert.Equal(t, navPage, readFile(t, demo))
	assert.Equal(t, navPage, readFile(t, water))

	assert.Equal(t, "<p>Nothing to see</p>\n", readFile(t, plain))

	assert.Contains(t, readFile(t, index), `src="assets/images/icons/platform.png"`)
	assert.Contains(t, readFile(t, index), `src="assets/images/icons/cloud-security.png"`)
	assert.Contains(t, readFile(t, nested), `src="../assets/images/icons/solutions.png"`)
	assert.Contains(t, readFile(t, deep), `src="../../assets/images/icons/services.png"`)

	for _, res := range rep.results {
		if res.Path == broken {
			assert.Error(t, res.Err)
		}
		if res.Path == index {
			assert.Equal(t, []string{"platform", "cloud-security"}, res.Applied)
		}
	}
}

func TestRunTwiceIsStable(t *testing.T) {
	root := t.TempDir()
	index := filepath.Join(root, "index.html")
	deep := filepath.Join(root, "x", "y", "page.html")
	writeFile(t, index, navPage+"\n"+`<a href="cloud-security.html">Cloud Security</a>`)
	writeFile(t, deep, navPage)

	in := newTestInjector(t, root, nil)
	first, err := in.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, first.Updated)

	afterFirst := map[string]string{index: readFile(t, index), deep: readFile(t, deep)}

	second, err := in.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 2, second.Unchanged)

	for p, content := range afterFirst {
		assert.Equal(t, content, readFile(t, p), p)
	}
	assert.Equal(t, 1, strings.Count(afterFirst[index], "cloud-security.png"))
}

func TestProcessFilePreservesMode(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "index.html")
	require.NoError(t, os.WriteFile(p, []byte(navPage), 0600))

	res := newTestInjector(t, root, nil).ProcessFile(p)
	require.Equal(t, models.StatusUpdated, res.Status)

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
