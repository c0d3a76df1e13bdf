// Package audit sanity-checks the license fields declared by a set of
// packages, identified by Package URL. It is the batch entry point for
// lockfile and SBOM tooling: every declaration gets a finding, and a bad
// purl or license shape is recorded rather than aborting the batch.
package audit

import (
	"context"
	"sync"

	"github.com/git-pkgs/purl"

	"github.com/git-pkgs/spdx"
)

// Declaration pairs a package with the license field it declares. License
// takes the shapes spdx.Validate accepts: a single expression string or a
// list of alternative strings.
type Declaration struct {
	PURL    string
	License any
}

// Finding is the verdict for one declaration. Err is set for a malformed
// purl or a bad license shape; invalid license text is not an error, it is
// Valid=false.
type Finding struct {
	PURL      string
	Ecosystem string
	Name      string
	Valid     bool
	Err       error
}

// Checker validates one license declaration. *spdx.Validator satisfies it.
type Checker interface {
	Validate(license any) (bool, error)
}

// Audit validates each declaration in order. If v is nil, a validator backed
// by the embedded catalog is used.
func Audit(v Checker, decls []Declaration) []Finding {
	if v == nil {
		v = spdx.NewValidator(spdx.DefaultCatalog())
	}

	findings := make([]Finding, len(decls))
	for i, d := range decls {
		findings[i] = auditOne(v, d)
	}
	return findings
}

func auditOne(v Checker, d Declaration) Finding {
	f := Finding{PURL: d.PURL}

	p, err := purl.Parse(d.PURL)
	if err != nil {
		f.Err = err
		return f
	}
	f.Ecosystem = p.Type
	f.Name = fullName(p)

	ok, err := v.Validate(d.License)
	if err != nil {
		f.Err = err
		return f
	}
	f.Valid = ok
	return f
}

func fullName(p *purl.PURL) string {
	if p.Namespace == "" {
		return p.Name
	}
	return p.Namespace + "/" + p.Name
}

const defaultConcurrency = 15

// AuditConcurrent validates declarations in parallel and returns findings in
// declaration order. concurrency <= 0 means a default limit. The context
// only bounds scheduling; declarations that never run are returned with
// ctx.Err() recorded.
func AuditConcurrent(ctx context.Context, v Checker, decls []Declaration, concurrency int) []Finding {
	if v == nil {
		v = spdx.NewValidator(spdx.DefaultCatalog())
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	findings := make([]Finding, len(decls))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, d := range decls {
		wg.Add(1)
		go func(i int, d Declaration) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				findings[i] = Finding{PURL: d.PURL, Err: ctx.Err()}
				return
			}

			findings[i] = auditOne(v, d)
		}(i, d)
	}

	wg.Wait()
	return findings
}

// Invalid filters findings down to the ones that failed, either with an
// invalid declaration or an error.
func Invalid(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if !f.Valid || f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}
