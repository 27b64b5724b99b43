package assessment

import (
	"context"
	"fmt"

	"github.com/user/sentinel-aegis/pkg/logging"
)

// Coordinator drives one end-to-end assessment: it runs every registered
// module in registration order, isolates per-module failures, and feeds the
// collected results through aggregation, classification, and recommendation
// building. Each run owns its own results map, so independent Coordinators
// may run concurrently in an embedding application.
type Coordinator struct {
	organization string
	modules      []Module
	byName       map[string]Module
}

// NewCoordinator creates a coordinator for the given organization with no
// modules registered.
func NewCoordinator(organization string) *Coordinator {
	return &Coordinator{
		organization: organization,
		byName:       make(map[string]Module),
	}
}

// Register adds a module to the run order. Registering a name twice replaces
// the earlier module but keeps its original position.
func (c *Coordinator) Register(m Module) {
	if _, exists := c.byName[m.Name()]; !exists {
		c.modules = append(c.modules, m)
	} else {
		for i, existing := range c.modules {
			if existing.Name() == m.Name() {
				c.modules[i] = m
				break
			}
		}
	}
	c.byName[m.Name()] = m
}

// Modules returns the registered module names in run order.
func (c *Coordinator) Modules() []string {
	names := make([]string, 0, len(c.modules))
	for _, m := range c.modules {
		names = append(names, m.Name())
	}
	return names
}

// HasModule reports whether a module is registered under name.
func (c *Coordinator) HasModule(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// RunAssessment executes every registered module sequentially and builds the
// final report. A failure in one module is logged and recorded as an
// error-status result for that module's slot; it never aborts the run.
func (c *Coordinator) RunAssessment(ctx context.Context) *AssessmentReport {
	logging.Infof("Starting comprehensive security assessment")
	results := make(map[string]*ModuleResult, len(c.modules))

	for _, m := range c.modules {
		logging.Infof("Running module: %s", m.Name())
		results[m.Name()] = c.runModule(ctx, m)
	}

	return BuildReport(c.organization, results)
}

// RunModule executes a single named module and builds a report from that
// result alone. Aggregation and classification apply the same rules as a
// full run, so a module outside the weight table yields the default score.
func (c *Coordinator) RunModule(ctx context.Context, name string) (*AssessmentReport, error) {
	m, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("module %s is not registered", name)
	}

	logging.Infof("Running module: %s", name)
	results := map[string]*ModuleResult{
		name: c.runModule(ctx, m),
	}
	return BuildReport(c.organization, results), nil
}

// runModule is the failure boundary around one module invocation: an error
// return or a panic becomes an error-status result and the enclosing loop
// continues.
func (c *Coordinator) runModule(ctx context.Context, m Module) (result *ModuleResult) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("Error in module %s: %v", m.Name(), r)
			result = &ModuleResult{Status: StatusError, Message: fmt.Sprintf("%v", r)}
		}
	}()

	result, err := m.Run(ctx)
	if err != nil {
		logging.Errorf("Error in module %s: %v", m.Name(), err)
		return &ModuleResult{Status: StatusError, Message: err.Error()}
	}
	if result == nil {
		return &ModuleResult{Status: StatusError, Message: "module returned no result"}
	}
	return result
}
