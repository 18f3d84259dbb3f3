package main

// Command help text
const (
	MsgRootShort = "Provision script working directories"
	MsgRootLong  = `scriptinit provisions a working directory with the files a script
execution tool needs to run and be debugged: entry scripts, editor and
debugger configuration, and import manifests exposing platform SDK
assemblies. Running it again on the same directory is a no-op.`

	MsgInitShort   = "Initialize a folder for script execution"
	MsgInitLong    = `Initialize a folder with a default entry script, debugger launch
configuration, editor configuration, an auxiliary web server script, and
import manifests for the platform SDKs. Existing files are never
overwritten; the launch configuration's tool path is kept current.`
	MsgInitExample = `  scriptinit init
  scriptinit init my-scripts
  scriptinit init --script-name build.csx`

	MsgRegisterShort = "Register the script file association"
	MsgRegisterLong  = `Register the script file extension with the tool so scripts can be
launched directly. Only needed on Windows; on other platforms this is a
no-op.`

	MsgVersionShort = "Print version information"
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagScriptName = "Name for the default entry script"
)
