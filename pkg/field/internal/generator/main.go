package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/smallfp/pkg/field"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "smallfp/pkg/field/internal/generator")

	specs := []fieldSpec{
		{Name: "m31", GoName: "M31", Modulus: 1<<31 - 1, Generator: 7, Backend: field.Standard,
			Doc: "the Mersenne prime field of order 2³¹ - 1 = 2147483647"},
		{Name: "babybear", GoName: "BabyBear", Modulus: 1<<31 - 1<<27 + 1, Generator: 31, Backend: field.Montgomery,
			Doc: "the prime field of order 2³¹ - 2²⁷ + 1 = 2013265921"},
		{Name: "koalabear", GoName: "KoalaBear", Modulus: 1<<31 - 1<<24 + 1, Generator: 3, Backend: field.Montgomery,
			Doc: "the prime field of order 2³¹ - 2²⁴ + 1 = 2130706433"},
		{Name: "gf101", GoName: "GF101", Modulus: 101, Generator: 2, Backend: field.Standard,
			Doc: "the prime field of order 101"},
	}

	for _, spec := range specs {
		// surface bad descriptors here rather than at package init of the
		// generated code
		_, err := field.NewConfig(spec.Name, spec.Modulus, spec.Generator, spec.Backend)
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(spec, "field", "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../instance_%s.go", spec.Name),
				Templates: []string{"instance.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpec struct {
	Name      string
	GoName    string
	Modulus   uint32
	Generator uint32
	Backend   field.Backend
	Doc       string
}

// BackendIdent returns the Go identifier for the spec's backend selector.
func (f fieldSpec) BackendIdent() string {
	switch f.Backend {
	case field.Montgomery:
		return "Montgomery"
	default:
		return "Standard"
	}
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
