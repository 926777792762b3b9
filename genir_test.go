package genir

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureHandler records every log record so tests can assert on
// diagnostic emission.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

// countLevel returns how many records were emitted at the given level.
func (h *captureHandler) countLevel(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

func newCaptureLogger() (*slog.Logger, *captureHandler) {
	h := &captureHandler{}
	return slog.New(h), h
}

// writeProjectBundle creates dir/<name>.xcodeproj/project.pbxproj and
// returns the bundle path.
func writeProjectBundle(t *testing.T, dir, name, pbxproj string) string {
	t.Helper()
	bundle := filepath.Join(dir, name+".xcodeproj")
	require.NoError(t, os.MkdirAll(bundle, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundle, "project.pbxproj"), []byte(pbxproj), 0o644))
	return bundle
}

// writeWorkspaceBundle creates dir/<name>.xcworkspace/contents.xcworkspacedata
// and returns the bundle path.
func writeWorkspaceBundle(t *testing.T, dir, name, contents string) string {
	t.Helper()
	bundle := filepath.Join(dir, name+".xcworkspace")
	require.NoError(t, os.MkdirAll(bundle, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundle, "contents.xcworkspacedata"), []byte(contents), 0o644))
	return bundle
}

// appPBXProj declares target App depending on native target Lib and the
// Logging product of package swift-log. Lib builds Lib.framework.
const appPBXProj = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {};
	objectVersion = 56;
	objects = {
		ROOT0000 = {
			isa = PBXProject;
			mainGroup = GRP00000;
			packageReferences = (
				PKG00001,
			);
			targets = (
				TGT00001,
				TGT00002,
			);
		};
		TGT00001 = {
			isa = PBXNativeTarget;
			dependencies = (
				DEP00001,
				DEP00002,
			);
			name = App;
			productName = App;
			productReference = FIL00001;
			productType = "com.apple.product-type.application";
		};
		TGT00002 = {
			isa = PBXNativeTarget;
			dependencies = (
			);
			name = Lib;
			productName = Lib;
			productReference = FIL00002;
			productType = "com.apple.product-type.framework";
		};
		DEP00001 = {
			isa = PBXTargetDependency;
			target = TGT00002;
			targetProxy = PRX00001;
		};
		DEP00002 = {
			isa = PBXTargetDependency;
			productRef = PPD00001;
		};
		PPD00001 = {
			isa = XCSwiftPackageProductDependency;
			package = PKG00001;
			productName = Logging;
		};
		PKG00001 = {
			isa = XCRemoteSwiftPackageReference;
			repositoryURL = "https://github.com/apple/swift-log.git";
			requirement = {
				kind = upToNextMajorVersion;
				minimumVersion = 1.5.0;
			};
		};
		FIL00001 = {
			isa = PBXFileReference;
			explicitFileType = wrapper.application;
			path = App.app;
			sourceTree = BUILT_PRODUCTS_DIR;
		};
		FIL00002 = {
			isa = PBXFileReference;
			explicitFileType = wrapper.framework;
			path = Lib.framework;
			sourceTree = BUILT_PRODUCTS_DIR;
		};
		PRX00001 = {
			isa = PBXContainerItemProxy;
			proxyType = 1;
		};
		GRP00000 = {
			isa = PBXGroup;
			children = (
			);
		};
	};
	rootObject = ROOT0000;
}
`

// toolPBXProj declares a single Tool target with no dependencies.
const toolPBXProj = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objectVersion = 56;
	objects = {
		ROOT0000 = {
			isa = PBXProject;
			mainGroup = GRP00000;
			targets = (
				TGT00001,
			);
		};
		TGT00001 = {
			isa = PBXNativeTarget;
			dependencies = (
			);
			name = Tool;
			productName = Tool;
			productReference = FIL00001;
			productType = "com.apple.product-type.tool";
		};
		FIL00001 = {
			isa = PBXFileReference;
			explicitFileType = "compiled.mach-o.executable";
			path = Tool;
			sourceTree = BUILT_PRODUCTS_DIR;
		};
		GRP00000 = {
			isa = PBXGroup;
			children = (
			);
		};
	};
	rootObject = ROOT0000;
}
`
