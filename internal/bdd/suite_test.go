// Package bdd holds a ginkgo/gomega BDD suite exercising the adaptive
// DOPRI5 integrator and the special-function catalogue end to end.
package bdd

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBDD(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DOPRI5 and Special Function Catalogue Suite")
}
