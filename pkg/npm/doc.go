// Package npm stages a Node.js project into a working directory, installs
// its dependencies once and runs scripts from its package.json.
//
// # Overview
//
// A Build accumulates configuration (project directory, target directory,
// what to copy, the NODE_ENV value) and is then asked to run one or more
// scripts:
//
//	err := npm.New(npm.Options{}).
//		ProjectDirectory("web").
//		TargetDirectory(filepath.Join(outDir, "web")).
//		CopyAll().
//		RunScript("build")
//
// The first RunScript stages the project and runs `npm install` (`npm ci`
// for the release profile). Later calls reuse the installed target until
// either directory is changed.
//
// # Staging
//
// When the project and target directories differ, every selected item is
// removed from the target and copied again from the project, so the target
// never keeps files that were deleted upstream. CopyAll selects every
// top-level entry except node_modules. CopyItems selects an explicit list
// of relative paths. When both directories are the same nothing is copied.
//
// # Failures
//
// Every failure is returned as a *errors.Error whose code identifies the
// stage that failed. Nothing is retried. Build scripts that want the
// failure to stop the build use MustRunScript.
package npm
