package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storagev1 "k8s.io/api/storage/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/openebs/mayastor-storageclass/internal/k8sclient"
)

// stubClient records cluster calls.
type stubClient struct {
	applied  [][]byte
	managers []string
	deleted  []string
	applyErr error
	getErr   error
}

func (s *stubClient) ApplyManifests(_ context.Context, manifests []byte, fieldManager string) error {
	s.applied = append(s.applied, manifests)
	s.managers = append(s.managers, fieldManager)
	return s.applyErr
}

func (s *stubClient) GetStorageClass(_ context.Context, name string) (*storagev1.StorageClass, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &storagev1.StorageClass{
		ObjectMeta:  metav1.ObjectMeta{Name: name},
		Provisioner: "io.openebs.csi-mayastor",
	}, nil
}

func (s *stubClient) DeleteStorageClass(_ context.Context, name string) error {
	s.deleted = append(s.deleted, name)
	return nil
}

// injectApplyStubs swaps the kubeconfig reader and client factory for the
// test's duration and returns the stub client.
func injectApplyStubs(t *testing.T) *stubClient {
	t.Helper()

	stub := &stubClient{}

	origRead := readFile
	origNew := newK8sClient
	readFile = func(string) ([]byte, error) {
		return []byte("fake-kubeconfig"), nil
	}
	newK8sClient = func([]byte) (k8sclient.Client, error) {
		return stub, nil
	}
	t.Cleanup(func() {
		readFile = origRead
		newK8sClient = origNew
	})

	return stub
}

func TestApply(t *testing.T) {
	stub := injectApplyStubs(t)

	err := Apply(context.Background(), ApplyOptions{
		ConfigPath:     writeTestConfig(t, "release_name: mayastor\n"),
		KubeconfigPath: "ignored-by-stub",
	})
	require.NoError(t, err)

	require.Len(t, stub.applied, 1)
	assert.Contains(t, string(stub.applied[0]), "kind: StorageClass")
	assert.Equal(t, []string{"mayastor-sc"}, stub.managers)
}

func TestApply_DisabledIsNoOp(t *testing.T) {
	stub := injectApplyStubs(t)

	err := Apply(context.Background(), ApplyOptions{
		ConfigPath: writeTestConfig(t, "release_name: mayastor\nstorage_class:\n  enabled: false\n"),
	})
	require.NoError(t, err)
	assert.Empty(t, stub.applied, "nothing should reach the cluster when disabled")
}

func TestApply_FailsVerificationBeforeCluster(t *testing.T) {
	stub := injectApplyStubs(t)

	// No release name: the object name "-mayastor" is invalid and must be
	// caught before any cluster call.
	err := Apply(context.Background(), ApplyOptions{
		ConfigPath: writeTestConfig(t, "storage_class:\n  enabled: true\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed verification")
	assert.Empty(t, stub.applied)
}

func TestApply_PropagatesApplyError(t *testing.T) {
	stub := injectApplyStubs(t)
	stub.applyErr = errors.New("connection refused")

	err := Apply(context.Background(), ApplyOptions{
		ConfigPath: writeTestConfig(t, "release_name: mayastor\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply storage class")
}

func TestApply_ConfirmError(t *testing.T) {
	stub := injectApplyStubs(t)
	stub.getErr = errors.New("storageclasses.storage.k8s.io \"mayastor-mayastor\" not found")

	err := Apply(context.Background(), ApplyOptions{
		ConfigPath: writeTestConfig(t, "release_name: mayastor\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to confirm storage class")
	require.Len(t, stub.applied, 1, "apply should have happened before the read-back")
}

func TestApply_KubeconfigReadError(t *testing.T) {
	origRead := readFile
	readFile = func(path string) ([]byte, error) {
		return nil, errors.New("permission denied")
	}
	t.Cleanup(func() { readFile = origRead })

	err := Apply(context.Background(), ApplyOptions{
		ConfigPath:     writeTestConfig(t, "release_name: mayastor\n"),
		KubeconfigPath: "/etc/kubernetes/admin.conf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read kubeconfig")
}
