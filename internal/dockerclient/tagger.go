package dockerclient

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
)

// Environment variables carrying registry credentials. Pushes stay
// anonymous when both are unset.
const (
	EnvRegistryUser  = "RELEASE_REGISTRY_USER"
	EnvRegistryToken = "RELEASE_REGISTRY_TOKEN"
)

type DockerImageTagger interface {
	TagImage(ctx context.Context, source, target string) error
	PushImage(ctx context.Context, ref string) error
}

// TagImage aliases an existing local image under an additional reference.
func (dc *dockerClient) TagImage(ctx context.Context, source, target string) error {
	if err := dc.client.ImageTag(ctx, source, target); err != nil {
		return fmt.Errorf("image tag %s: %w", target, err)
	}
	return nil
}

// PushImage pushes one reference to its registry. The daemon reports push
// errors inside the JSON progress stream, not the call error, so the stream
// is scanned to completion.
func (dc *dockerClient) PushImage(ctx context.Context, ref string) error {
	auth, err := registryAuth()
	if err != nil {
		return fmt.Errorf("registry auth: %w", err)
	}

	resp, err := dc.client.ImagePush(ctx, ref, image.PushOptions{RegistryAuth: auth})
	if err != nil {
		return fmt.Errorf("image push %s: %w", ref, err)
	}
	defer resp.Close()

	scanner := bufio.NewScanner(resp)
	for scanner.Scan() {
		var pushResp struct {
			Status      string `json:"status"`
			Error       string `json:"error"`
			ErrorDetail struct {
				Message string `json:"message"`
			} `json:"errorDetail"`
		}

		if unmarshalErr := json.Unmarshal(scanner.Bytes(), &pushResp); unmarshalErr != nil {
			// Not JSON, just skip
			continue
		}

		if pushResp.Error != "" {
			return fmt.Errorf("image push %s: %s", ref, pushResp.Error)
		}
		if pushResp.ErrorDetail.Message != "" {
			return fmt.Errorf("image push %s: %s", ref, pushResp.ErrorDetail.Message)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return fmt.Errorf("image push %s: read stream: %w", ref, scanErr)
	}

	return nil
}

// registryAuth encodes env-provided credentials for the push, or returns the
// empty string for an anonymous push.
func registryAuth() (string, error) {
	user := os.Getenv(EnvRegistryUser)
	token := os.Getenv(EnvRegistryToken)
	if user == "" && token == "" {
		return "", nil
	}

	return registry.EncodeAuthConfig(registry.AuthConfig{
		Username: user,
		Password: token,
	})
}
