// Package k8sclient applies rendered manifests to a cluster using
// Server-Side Apply and provides typed access to StorageClass objects.
package k8sclient
