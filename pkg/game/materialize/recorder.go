package materialize

// Recorder is a Sink that keeps the names of everything created, in order.
type Recorder struct {
	Nodes      []string
	Connectors []string
}

// CreateNode records the node name
func (r *Recorder) CreateNode(n *Node) error {
	r.Nodes = append(r.Nodes, n.Name())
	return nil
}

// CreateConnector records the connector name
func (r *Recorder) CreateConnector(c *Connector) error {
	r.Connectors = append(r.Connectors, c.Name())
	return nil
}

// Sinks fans every call out to several sinks, stopping at the first error.
type Sinks []Sink

// CreateNode forwards to every sink
func (s Sinks) CreateNode(n *Node) error {
	for _, sink := range s {
		if err := sink.CreateNode(n); err != nil {
			return err
		}
	}
	return nil
}

// CreateConnector forwards to every sink
func (s Sinks) CreateConnector(c *Connector) error {
	for _, sink := range s {
		if err := sink.CreateConnector(c); err != nil {
			return err
		}
	}
	return nil
}
