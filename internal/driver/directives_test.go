package driver

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cglogic/internal/directive"
)

func TestVerifyDirectives(t *testing.T) {
	root := writeTree(t, map[string]string{
		"unbound.cgif": "[Cat: *x] (On ?x ?y) /* expect: REF3002 */\n",
		"clean.cl":     "; clean\n(forall (x) (if (Man x) (Mortal x)))\n",
	})
	report, err := CheckPaths(context.Background(), []string{root}, Options{Jobs: 2})
	if err != nil {
		t.Fatalf("CheckPaths: %v", err)
	}
	if !report.Failed() {
		t.Fatal("unbound.cgif must fail the plain check")
	}

	var out bytes.Buffer
	res := VerifyDirectives(report, directive.RunnerConfig{Output: &out})
	if res.Total != 2 || !res.OK() {
		t.Errorf("result %+v\n%s", res, out.String())
	}
}

func TestVerifyDirectivesReportsMismatch(t *testing.T) {
	root := writeTree(t, map[string]string{
		"wrong.cgif": "[Cat] /* expect: REF3001 */\n(On ?y)\n",
	})
	report, err := CheckPaths(context.Background(), []string{root}, Options{})
	if err != nil {
		t.Fatalf("CheckPaths: %v", err)
	}

	var out bytes.Buffer
	res := VerifyDirectives(report, directive.RunnerConfig{Output: &out})
	if res.Failed != 1 || res.Unexpected != 1 {
		t.Errorf("result %+v\n%s", res, out.String())
	}
	if !strings.Contains(out.String(), "missing REF3001") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestCollectDirectivesNilReport(t *testing.T) {
	if n := CollectDirectives(nil).Len(); n != 0 {
		t.Errorf("nil report collected %d scenarios", n)
	}
}
