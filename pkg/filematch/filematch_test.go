package filematch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSet_Matches(t *testing.T) {
	patterns := []string{"docs/**", "*.mdx", "[invalid", "README.md", "{a,b}.md"}
	set := NewSet(patterns)
	require.Equal(t, 4, set.Len(), "invalid pattern is skipped")

	tests := []struct {
		name string
		path string
		want []int
	}{
		{"double star", "docs/api.md", []int{0}},
		{"double star nested", "docs/guide/intro.md", []int{0}},
		{"star crosses separator", "docs/page.mdx", []int{0, 1}},
		{"literal", "README.md", []int{3}},
		{"brace", "b.md", []int{4}},
		{"no match", "CHANGELOG.md", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Matches(tt.path))
		})
	}
}

func TestSet_Empty(t *testing.T) {
	set := NewSet(nil)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Matches("a.md"))
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"docs/**", "docs/x.md", true},
		{"docs/**", "docs/a/b/x.md", true},
		{"docs/*.md", "docs/a/x.md", false},
		{"*.md", "docs/x.md", false},
		{"**/*.md", "docs/x.md", true},
		{"blog/*.{md,mdx}", "blog/post.mdx", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"|"+tt.path, func(t *testing.T) {
			m, err := NewMatcher(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}
}

func TestNewMatcher_Invalid(t *testing.T) {
	_, err := NewMatcher("[unclosed")
	assert.Error(t, err)
}

func TestMatchAny(t *testing.T) {
	excludes := []string{"node_modules", "CHANGELOG.md", "build/**"}

	assert.True(t, MatchAny(excludes, "node_modules/pkg/README.md"))
	assert.True(t, MatchAny(excludes, "CHANGELOG.md"))
	assert.True(t, MatchAny(excludes, "build/out.md"))
	assert.False(t, MatchAny(excludes, "docs/index.md"))
	assert.False(t, MatchAny([]string{"[bad"}, "x.md"))
}

func TestHasCommaWithoutBrace(t *testing.T) {
	assert.True(t, HasCommaWithoutBrace("a.md,b.md"))
	assert.False(t, HasCommaWithoutBrace("{a,b}.md"))
	assert.False(t, HasCommaWithoutBrace("docs/**"))
}

func TestRelativizer(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	file := filepath.Join(root, "docs", "api.md")
	require.NoError(t, os.WriteFile(file, []byte("# API\n"), 0o644))

	r := NewRelativizer(root)
	assert.Equal(t, filepath.Join("docs", "api.md"), r.Rel(file))

	t.Chdir(root)
	assert.Equal(t, filepath.Join("docs", "api.md"), r.Rel(filepath.Join("docs", "api.md")))

	// Missing files cannot be canonicalized and pass through untouched.
	assert.Equal(t, "docs/missing.md", r.Rel("docs/missing.md"))

	outside := filepath.Join(t.TempDir(), "x.md")
	require.NoError(t, os.WriteFile(outside, nil, 0o644))
	assert.Equal(t, outside, r.Rel(outside))
}

func TestRelativizer_Symlink(t *testing.T) {
	realDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(realDir, "a.md"), nil, 0o644))
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	r := NewRelativizer(link)
	assert.Equal(t, "a.md", r.Rel(filepath.Join(realDir, "a.md")))
}

func TestRelativizer_NoRoot(t *testing.T) {
	var nilRel *Relativizer
	assert.Equal(t, "x.md", nilRel.Rel("x.md"))
	assert.Equal(t, "x.md", NewRelativizer("").Rel("x.md"))
}

func TestRelativizer_MockFileSystem(t *testing.T) {
	tests := []struct {
		name   string
		expect func(m *MockfileSystemMockRecorder)
		path   string
		want   string
	}{
		{
			name: "symlinked root",
			expect: func(m *MockfileSystemMockRecorder) {
				m.Abs("repo/a.md").Return("/work/repo/a.md", nil)
				m.EvalSymlinks("/work/repo/a.md").Return("/realDir/repo/a.md", nil)
				m.Abs("repo").Return("/work/repo", nil)
				m.EvalSymlinks("/work/repo").Return("/realDir/repo", nil)
			},
			path: "repo/a.md",
			want: "a.md",
		},
		{
			name: "outside root",
			expect: func(m *MockfileSystemMockRecorder) {
				m.Abs("other/b.md").Return("/work/other/b.md", nil)
				m.EvalSymlinks("/work/other/b.md").Return("/work/other/b.md", nil)
				m.Abs("repo").Return("/work/repo", nil)
				m.EvalSymlinks("/work/repo").Return("/work/repo", nil)
			},
			path: "other/b.md",
			want: "other/b.md",
		},
		{
			name: "abs error keeps path",
			expect: func(m *MockfileSystemMockRecorder) {
				m.Abs("repo/a.md").Return("", errors.New("getwd failed"))
			},
			path: "repo/a.md",
			want: "repo/a.md",
		},
		{
			name: "broken symlink keeps path",
			expect: func(m *MockfileSystemMockRecorder) {
				m.Abs("repo/a.md").Return("/work/repo/a.md", nil)
				m.EvalSymlinks("/work/repo/a.md").Return("", os.ErrNotExist)
			},
			path: "repo/a.md",
			want: "repo/a.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fs := NewMockfileSystem(ctrl)
			tt.expect(fs.EXPECT())

			r := &Relativizer{root: "repo", fs: fs}
			assert.Equal(t, tt.want, r.Rel(tt.path))
		})
	}
}
