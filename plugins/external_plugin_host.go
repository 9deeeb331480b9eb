package plugins

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-plugin"
	"github.com/jumppad-labs/hdltarget/logger"
)

// ExternalPluginHost runs a target in a separate plugin binary and drives it
// over net/rpc
type ExternalPluginHost struct {
	*DirectPluginHost
	client *plugin.Client
}

// NewExternalPluginHost starts the plugin binary at pluginPath and connects
// to the target it serves
func NewExternalPluginHost(l logger.Logger, pluginPath string) (*ExternalPluginHost, error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  HandshakeConfig,
		Plugins:          PluginMap(nil),
		Cmd:              exec.Command(pluginPath),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to start plugin %s: %w", pluginPath, err)
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	target, ok := raw.(Target)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin %s does not serve a target module", pluginPath)
	}

	if l != nil {
		l.Debug("plugin started", "path", pluginPath, "protocol", client.Protocol())
	}

	return &ExternalPluginHost{
		DirectPluginHost: NewDirectPluginHost(l, target),
		client:           client,
	}, nil
}

// Stop kills the plugin process
func (h *ExternalPluginHost) Stop() {
	if h.client != nil {
		h.client.Kill()
	}
}

// Serve serves target from a plugin binary, it blocks until the host
// disconnects
func Serve(target Target) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: HandshakeConfig,
		Plugins:         PluginMap(target),
	})
}

// Ensure ExternalPluginHost implements PluginHost interface
var _ PluginHost = (*ExternalPluginHost)(nil)
