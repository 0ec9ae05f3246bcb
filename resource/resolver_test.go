package resource

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T) *Resolver {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project/src", 0o755))

	person, err := os.ReadFile("../testfiles/Person.java")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/project/src/Person.java", person, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/project/README.md", []byte("# project\n"), 0o644))
	return NewResolver(fs)
}

func TestResolveKinds(t *testing.T) {
	r := newProject(t)
	ctx := context.Background()

	tests := []struct {
		path string
		kind Kind
		name string
	}{
		{"/", KindDirectory, "/"},
		{"/project", KindDirectory, "project"},
		{"/project/README.md", KindFile, "README.md"},
		{"/project/src/Person.java", KindJavaFile, "Person.java"},
		{"/project/src/Person.java/age", KindJavaField, "age"},
		{"/project/src/Person.java/getName", KindJavaMethod, "getName()"},
		{"/project/src/Person.java/setAge(int)", KindJavaMethod, "setAge(int)"},
		{"/project/src/Person.java/sum(int...)", KindJavaMethod, "sum(int...)"},
	}

	for _, test := range tests {
		res, err := r.Open(ctx, test.path)
		require.NoError(t, err, test.path)
		assert.Equal(t, test.kind, res.Kind(), test.path)
		assert.Equal(t, test.name, res.Name(), test.path)
	}
}

func TestResolveRelative(t *testing.T) {
	r := newProject(t)
	ctx := context.Background()

	src, err := r.Open(ctx, "/project/src")
	require.NoError(t, err)

	file, err := r.Resolve(ctx, src, "Person.java")
	require.NoError(t, err)
	assert.Equal(t, "/project/src/Person.java", file.Path())

	readme, err := r.Resolve(ctx, src, "../README.md")
	require.NoError(t, err)
	assert.Equal(t, "/project/README.md", readme.Path())

	same, err := r.Resolve(ctx, file, ".")
	require.NoError(t, err)
	assert.Equal(t, file.Path(), same.Path())

	field, err := r.Resolve(ctx, file, "name")
	require.NoError(t, err)
	assert.Equal(t, "/project/src/Person.java/name", field.Path())
	assert.Equal(t, file.Path(), field.Parent().Path())

	up, err := r.Resolve(ctx, field, "../..")
	require.NoError(t, err)
	assert.Equal(t, "/project/src", up.Path())

	root, err := r.Resolve(ctx, src, "../../..")
	require.NoError(t, err)
	assert.Equal(t, "/", root.Path())
}

func TestResolveNotFound(t *testing.T) {
	r := newProject(t)
	ctx := context.Background()

	for _, path := range []string{
		"/project/Missing.java",
		"/project/README.md/child",
		"/project/src/Person.java/missing",
		"/project/src/Person.java/age/more",
	} {
		_, err := r.Open(ctx, path)
		require.Error(t, err, path)
		assert.True(t, errors.Is(err, ErrNotFound), path)

		var notFound *NotFoundError
		assert.True(t, errors.As(err, &notFound), path)
	}
}

func TestResolveOverloads(t *testing.T) {
	fs := afero.NewMemMapFs()
	source := "class Over {\n    int size;\n    int size() { return size; }\n    void add(int a) {}\n    void add(String s) {}\n}\n"
	require.NoError(t, afero.WriteFile(fs, "/Over.java", []byte(source), 0o644))
	r := NewResolver(fs)
	ctx := context.Background()

	tests := []struct {
		path string
		kind Kind
		text string
	}{
		// A field name wins over a method with the same bare name
		{"/Over.java/size", KindJavaField, "int size;"},
		{"/Over.java/size()", KindJavaMethod, "int size() { return size; }"},
		// A bare method name finds the first overload
		{"/Over.java/add", KindJavaMethod, "void add(int a) {}"},
		{"/Over.java/add(String)", KindJavaMethod, "void add(String s) {}"},
	}
	for _, test := range tests {
		res, err := r.Open(ctx, test.path)
		require.NoError(t, err, test.path)
		assert.Equal(t, test.kind, res.Kind(), test.path)
		assert.Equal(t, test.text, res.String(), test.path)
	}

	_, err := r.Open(ctx, "/Over.java/add(long)")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberText(t *testing.T) {
	r := newProject(t)
	ctx := context.Background()

	field, err := r.Open(ctx, "/project/src/Person.java/MAX_AGE")
	require.NoError(t, err)
	assert.Equal(t, "public static final int MAX_AGE = 150;", field.String())

	method, err := r.Open(ctx, "/project/src/Person.java/addFriend")
	require.NoError(t, err)
	assert.Equal(t, "void addFriend(Person friend) {\n        friends.add(friend);\n    }", method.String())
}

func TestChildren(t *testing.T) {
	r := newProject(t)
	ctx := context.Background()

	project, err := r.Open(ctx, "/project")
	require.NoError(t, err)
	children, err := r.Children(ctx, project)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "README.md", children[0].Name())
	assert.Equal(t, "src", children[1].Name())

	file, err := r.Open(ctx, "/project/src/Person.java")
	require.NoError(t, err)
	members, err := r.Children(ctx, file)
	require.NoError(t, err)

	var names []string
	for _, member := range members {
		names = append(names, member.Name())
	}
	assert.Equal(t, []string{
		"name", "age", "MAX_AGE", "friends",
		"Person(String,int)", "getName()", "setAge(int)", "sum(int...)", "addFriend(Person)",
	}, names)

	readme, err := r.Open(ctx, "/project/README.md")
	require.NoError(t, err)
	none, err := r.Children(ctx, readme)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJavaFileReflectsCurrentSource(t *testing.T) {
	r := newProject(t)
	ctx := context.Background()

	res, err := r.Open(ctx, "/project/src/Person.java")
	require.NoError(t, err)
	file := res.(*JavaFile)

	require.NoError(t, afero.WriteFile(r.Fs, file.Path(), []byte("class Person { int only; }"), 0o644))
	class, err := file.JavaClass(ctx)
	require.NoError(t, err)
	require.Len(t, class.Fields, 1)
	assert.Equal(t, "only", class.Fields[0].Name)

	require.NoError(t, r.Fs.Remove(file.Path()))
	_, err = file.JavaClass(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
