package render

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePython puts a python executable on PATH which appends every script
// it's asked to run to the returned log file, preceded by a "#run" line.
func fakePython(t *testing.T) string {
	if runtime.GOOS == "windows" { t.Skip("fake python needs /bin/sh") }

	bin, work := t.TempDir(), t.TempDir()
	log := filepath.Join(work, "python.log")
	script := "#!/bin/sh\necho '#run' >> " + log + "\ncat \"$1\" >> " + log +
		"\necho >> " + log + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "python"), []byte(script), 0755))

	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	// pyplot writes its script to the working directory.
	t.Chdir(work)
	return log
}

// pythonRuns splits the fake python log into the scripts that were run.
func pythonRuns(t *testing.T, log string) []string {
	text, err := os.ReadFile(log)
	if os.IsNotExist(err) { return nil }
	require.NoError(t, err)
	runs := strings.Split(string(text), "#run\n")
	return runs[1:]
}

func TestPyplotFlush(t *testing.T) {
	log := fakePython(t)

	p := NewPyplot("out", false)
	require.NoError(t, p.RenderCurve(testCurve(t)))
	require.NoError(t, p.Flush())

	runs := pythonRuns(t, log)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, strings.Count(runs[0], "plt.savefig("))
	assert.Contains(t, runs[0], "arch.png")
	assert.NotContains(t, runs[0], "plt.show()")

	// Figures from the first flush aren't drawn again.
	require.NoError(t, p.Flush())
	runs = pythonRuns(t, log)
	require.Len(t, runs, 2)
	assert.NotContains(t, runs[1], "plt.savefig(")
}

func TestPyplotFlushShow(t *testing.T) {
	log := fakePython(t)

	p := NewPyplot("out", true)
	require.NoError(t, p.RenderSurface(testSurface(t, 3, 4)))
	require.NoError(t, p.Flush())

	runs := pythonRuns(t, log)
	require.Len(t, runs, 1)
	assert.Equal(t, 3, strings.Count(runs[0], "plt.savefig("))
	assert.Equal(t, 1, strings.Count(runs[0], "plt.show()"))
	for _, proj := range []string{"xy", "xz", "yz"} {
		assert.Contains(t, runs[0], "plane_"+proj+".png")
	}
}
