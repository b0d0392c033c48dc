package minify

import (
	"strings"
	"testing"
)

func TestMinifyRenamesAndShrinks(t *testing.T) {
	src := `
int add(int first, int second) {
    int result = first + second;
    return result;
}

int main(void) {
    return add(1, 2);
}
`
	res, err := Minify(src)
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	if len(res.Output) >= len(src) {
		t.Errorf("output (%d bytes) is not smaller than input (%d bytes)", len(res.Output), len(src))
	}
	if !strings.Contains(res.Output, "main") {
		t.Errorf("output lost main: %q", res.Output)
	}
	if strings.Contains(res.Output, "result") || strings.Contains(res.Output, "first") {
		t.Errorf("output leaked original identifier names: %q", res.Output)
	}
}

func TestMinifyPreservesPreprocessorDirectives(t *testing.T) {
	src := "#include <stdio.h>\nint main(void) { return 0; }\n"
	res, err := Minify(src)
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	if !strings.HasPrefix(res.Output, "#include <stdio.h>\n") {
		t.Errorf("expected preprocessor line preserved verbatim, got %q", res.Output)
	}
}

func TestMinifyDropsComments(t *testing.T) {
	src := "// a comment\nint main(void) /* also a comment */ { return 0; }\n"
	res, err := Minify(src)
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	if strings.Contains(res.Output, "comment") {
		t.Errorf("expected comments to be dropped, got %q", res.Output)
	}
}

func TestMinifyEndToEndLiteralExample(t *testing.T) {
	src := "int  main ( void ) {\n  return  0 ;\n}\n"
	res, err := Minify(src)
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	want := "int main(void){return 0;}"
	if res.Output != want {
		t.Errorf("got %q, want %q", res.Output, want)
	}
}

func TestMinifyRejectsUnparsableSource(t *testing.T) {
	_, err := Minify("int main( {")
	if err == nil {
		t.Fatal("expected an error for malformed source")
	}
}
