package tikv

// Normalizes a build tool's binary name via a symbolic link.
type Link struct {
	Target string `yaml:"target"` // Existing binary (e.g. /usr/bin/cmake3).
	Name   string `yaml:"name"`   // Link to create (e.g. /usr/bin/cmake).
}

// The complete build policy. Every field is a fixed constant of the
// generator; nothing is read from the environment at emit time.
type Config struct {
	BuilderBase     string   `yaml:"builder_base"`     // Pinned base image for the build stage.
	RuntimeBase     string   `yaml:"runtime_base"`     // Minimal base image for the shipped stage.
	ExtraRepository string   `yaml:"extra_repository"` // Package enabling the extended repository.
	Packages        []string `yaml:"packages"`         // Build prerequisites.
	BuildToolLink   Link     `yaml:"build_tool_link"`  // cmake3 normalization.
	LibraryPath     string   `yaml:"library_path"`     // Prepended to LIBRARY_PATH and LD_LIBRARY_PATH.
	InstallerURL    string   `yaml:"installer_url"`    // Toolchain installer fetch-and-execute source.
	ToolchainBin    string   `yaml:"toolchain_bin"`    // Prepended to PATH for toolchain commands.
	ProjectRoot     string   `yaml:"project_root"`     // Working directory for the source build.
	Manifest        string   `yaml:"manifest"`         // Pinned-version manifest file in the source tree.
	BuildCommand    string   `yaml:"build_command"`    // Release-build entry point.
	OutputDir       string   `yaml:"output_dir"`       // Binary output path, relative to the project root.
	Binaries        []string `yaml:"binaries"`         // Artifacts copied into the runtime image, primary first.
	Ports           []int    `yaml:"ports"`            // TCP ports the runtime binary listens on.
}

// Returns the production build policy.
//
// The builder base is pinned to an exact CentOS tag, never a floating one:
// its old glibc keeps the produced binaries compatible with old client-side
// runtime libraries. The toolchain version itself is not named here; it is
// pinned by the rust-toolchain manifest inside the source tree.
func Default() Config {
	return Config{
		BuilderBase:     "centos:7.6.1810",
		RuntimeBase:     "pingcap/alpine-glibc",
		ExtraRepository: "epel-release",
		Packages: []string{
			"tar", "wget", "git", "which", "file", "unzip", "python-pip",
			"openssl-devel", "make", "cmake3", "gcc", "gcc-c++",
			"libstdc++-static", "pkg-config", "psmisc", "gdb",
			"libdwarf-devel", "elfutils-libelf-devel",
			"elfutils-libdwarf-devel", "binutils-devel",
		},
		BuildToolLink: Link{Target: "/usr/bin/cmake3", Name: "/usr/bin/cmake"},
		LibraryPath:   "/usr/local/lib",
		InstallerURL:  "https://sh.rustup.rs",
		ToolchainBin:  "/root/.cargo/bin/",
		ProjectRoot:   "/tikv",
		Manifest:      "rust-toolchain",
		BuildCommand:  "make dist_release",
		OutputDir:     "target/release",
		Binaries:      []string{"tikv-server", "tikv-ctl"},
		Ports:         []int{20160, 20180},
	}
}
