package llm

import "strings"

type Registry struct {
	models map[string]ChatModel
}

func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]ChatModel),
	}
}

func (r *Registry) Register(m ChatModel) {
	if r == nil || m == nil {
		return
	}
	name := strings.ToLower(strings.TrimSpace(m.Name()))
	if name == "" {
		return
	}
	if r.models == nil {
		r.models = make(map[string]ChatModel)
	}
	r.models[name] = m
}

func (r *Registry) Get(name string) (ChatModel, bool) {
	if r == nil || r.models == nil {
		return nil, false
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, false
	}
	m, ok := r.models[name]
	return m, ok
}

func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names
}
