package main_test

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs     []string
		stdin       string
		homeDir     string
		historyFile string
		session     *gexec.Session
	)

	run := func(args ...string) *gexec.Session {
		cmd := exec.Command(cliPath, args...)
		cmd.Dir = homeDir
		cmd.Env = append(os.Environ(), "HOME="+homeDir)

		if stdin != "" {
			cmd.Stdin = strings.NewReader(stdin)
		}

		s, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		return s
	}

	BeforeEach(func() {
		var err error
		homeDir, err = ioutil.TempDir("", "pass-alert-main")
		Expect(err).NotTo(HaveOccurred())

		historyFile = filepath.Join(homeDir, "history.db")
		stdin = ""
		cmdArgs = []string{}
	})

	AfterEach(func() {
		os.RemoveAll(homeDir)
	})

	Describe("CheckCommand", func() {
		JustBeforeEach(func() {
			finalArgs := append([]string{"check", "--no-color", "--history-file", historyFile}, cmdArgs...)
			session = run(finalArgs...)
		})

		Context("when given a weak password as an argument", func() {
			BeforeEach(func() {
				cmdArgs = []string{"password"}
			})

			It("prints the evaluation", func() {
				Eventually(session.Out).Should(gbytes.Say(`Strength:\s+Very Weak \(0/100\)`))
				Eventually(session.Out).Should(gbytes.Say(`Entropy:\s+37.6 bits`))
				Eventually(session.Out).Should(gbytes.Say(`Crack time:\s+20.9 seconds`))
				Eventually(session).Should(gexec.Exit(0))
			})

			It("explains what is wrong", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say(`\[WARN\] Keyboard pattern like password`))
				Expect(session.Out).To(gbytes.Say(`\[WARN\] Contains dictionary word: password`))
				Expect(session.Out).To(gbytes.Say(`- Increase length to at least 12 characters.`))
			})

			It("does not say anything about breaches", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).NotTo(gbytes.Say("Breached"))
			})

			Context("when a minimum score is required", func() {
				BeforeEach(func() {
					cmdArgs = append(cmdArgs, "--min-score", "50")
				})

				It("exits with status 3", func() {
					Eventually(session).Should(gexec.Exit(3))
					Expect(session.Err).To(gbytes.Say(`score 0 is below the minimum of 50`))
				})
			})
		})

		Context("when given a strong password", func() {
			BeforeEach(func() {
				cmdArgs = []string{"correct-Horse-battery-9", "--min-score", "50"}
			})

			It("exits with status 0", func() {
				Eventually(session.Out).Should(gbytes.Say(`Strength:\s+Strong \(75/100\)`))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when given a password on stdin", func() {
			BeforeEach(func() {
				stdin = "password\nignored\n"
			})

			It("evaluates the first line", func() {
				Eventually(session.Out).Should(gbytes.Say(`Very Weak \(0/100\)`))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when no password is given at all", func() {
			It("fails", func() {
				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("no password given"))
			})
		})

		Context("when given the --json flag", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--json", "password"}
			})

			It("prints the evaluation as JSON", func() {
				Eventually(session).Should(gexec.Exit(0))

				var report map[string]interface{}
				Expect(json.Unmarshal(session.Out.Contents(), &report)).To(Succeed())
				Expect(report["score"]).To(BeNumerically("==", 0))
				Expect(report["category"]).To(Equal("Very Weak"))
				Expect(report["crackTime"]).To(Equal("20.9 seconds"))
				Expect(report).NotTo(HaveKey("breach"))
			})
		})

		Context("when given the --zxcvbn flag", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--zxcvbn", "password"}
			})

			It("prints a second opinion", func() {
				Eventually(session.Out).Should(gbytes.Say(`zxcvbn:\s+0/4`))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when given the --breach flag", func() {
			var rangeAPI *ghttp.Server

			BeforeEach(func() {
				rangeAPI = ghttp.NewServer()
				cmdArgs = []string{"--breach", "--range-api-url", rangeAPI.URL() + "/range/", "password"}
			})

			AfterEach(func() {
				rangeAPI.Close()
			})

			Context("and the password has been breached", func() {
				BeforeEach(func() {
					rangeAPI.AppendHandlers(ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/range/5BAA6"),
						ghttp.VerifyHeaderKV("Add-Padding", "true"),
						ghttp.RespondWith(http.StatusOK, "0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n1E4C9B93F3F0682250B6CF8331B7EE68FD8:3861493\r\n"),
					))
				})

				It("reports how often it was seen", func() {
					Eventually(session.Out).Should(gbytes.Say(`Breached:\s+yes, seen 3861493 times`))
					Eventually(session).Should(gexec.Exit(0))
				})

				It("only sends the hash prefix", func() {
					Eventually(session).Should(gexec.Exit(0))
					Expect(rangeAPI.ReceivedRequests()).To(HaveLen(1))
				})
			})

			Context("and the password has not been breached", func() {
				BeforeEach(func() {
					rangeAPI.AppendHandlers(ghttp.RespondWith(http.StatusOK, "1E4C9B93F3F0682250B6CF8331B7EE68FD8:0\r\n"))
				})

				It("says so", func() {
					Eventually(session.Out).Should(gbytes.Say(`Breached:\s+not found`))
					Eventually(session).Should(gexec.Exit(0))
				})
			})

			Context("and the range API is broken", func() {
				BeforeEach(func() {
					rangeAPI.AppendHandlers(ghttp.RespondWith(http.StatusBadRequest, "nope"))
				})

				It("still prints the evaluation", func() {
					Eventually(session.Out).Should(gbytes.Say(`Very Weak \(0/100\)`))
					Eventually(session.Out).Should(gbytes.Say(`Breached:\s+unavailable`))
					Eventually(session).Should(gexec.Exit(0))
					Expect(session.Err).To(gbytes.Say(`\[WARN\].*breach lookup`))
				})
			})
		})

		Context("when given a tables file", func() {
			BeforeEach(func() {
				tablesPath := filepath.Join(homeDir, "tables.yml")
				Expect(ioutil.WriteFile(tablesPath, []byte("words: [hunter]\n"), 0600)).To(Succeed())

				cmdArgs = []string{"--tables", tablesPath, "hunter2hunter2"}
			})

			It("uses the overridden word list", func() {
				Eventually(session.Out).Should(gbytes.Say(`Contains dictionary word: hunter`))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when the tables file is invalid", func() {
			BeforeEach(func() {
				tablesPath := filepath.Join(homeDir, "tables.yml")
				Expect(ioutil.WriteFile(tablesPath, []byte("words: {"), 0600)).To(Succeed())

				cmdArgs = []string{"--tables", tablesPath, "password"}
			})

			It("fails", func() {
				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("parsing tables"))
			})
		})
	})

	Describe("AuditCommand", func() {
		JustBeforeEach(func() {
			finalArgs := append([]string{"audit", "--no-color"}, cmdArgs...)
			session = run(finalArgs...)
		})

		Context("when given a file with weak passwords", func() {
			BeforeEach(func() {
				listPath := filepath.Join(homeDir, "list.txt")
				Expect(ioutil.WriteFile(listPath, []byte("# staging accounts\npassword\ncorrect-Horse-battery-9\n"), 0600)).To(Succeed())

				cmdArgs = []string{"--file", listPath, "--comments"}
			})

			It("reports each weak password masked", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\] .*list.txt:2 \*{6}rd Very Weak \(0/100\)`))
				Eventually(session.Out).Should(gbytes.Say(`1 password\(s\) scored below 60.`))
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out.Contents()).NotTo(ContainSubstring("correct"))
			})
		})

		Context("when a password starts with #", func() {
			BeforeEach(func() {
				stdin = "#password\npassword\n"
			})

			It("scores it like any other line", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\] STDIN:1 \*{7}rd Very Weak \(0/100\)`))
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\] STDIN:2 \*{6}rd Very Weak \(0/100\)`))
				Eventually(session.Out).Should(gbytes.Say(`2 password\(s\) scored below 60.`))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("when every password on stdin is strong enough", func() {
			BeforeEach(func() {
				stdin = "correct-Horse-battery-9\n"
			})

			It("exits with status 0", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out.Contents()).To(BeEmpty())
			})
		})
	})

	Describe("HistoryCommand", func() {
		JustBeforeEach(func() {
			finalArgs := append([]string{"history", "--no-color", "--history-file", historyFile}, cmdArgs...)
			session = run(finalArgs...)
		})

		Context("when nothing has been checked", func() {
			It("says so", func() {
				Eventually(session.Out).Should(gbytes.Say("No evaluations recorded yet."))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when passwords have been checked", func() {
			BeforeEach(func() {
				for _, password := range []string{"password", "correct-Horse-battery-9"} {
					Eventually(run("check", "--history-file", historyFile, password)).Should(gexec.Exit(0))
				}
			})

			It("lists them masked, most recent first", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say(`\*{21}-9\s+75\s+Strong`))
				Expect(session.Out).To(gbytes.Say(`\*{6}rd\s+0\s+Very Weak`))
				Expect(session.Out.Contents()).NotTo(ContainSubstring("password"))
			})

			Context("when given the --json flag", func() {
				BeforeEach(func() {
					cmdArgs = []string{"--json"}
				})

				It("prints the entries as JSON", func() {
					Eventually(session).Should(gexec.Exit(0))

					var entries []map[string]interface{}
					Expect(json.Unmarshal(session.Out.Contents(), &entries)).To(Succeed())
					Expect(entries).To(HaveLen(2))
					Expect(entries[0]["password"]).To(Equal("*********************-9"))
					Expect(entries[1]["password"]).To(Equal("******rd"))
					Expect(entries[1]).To(HaveKey("timestamp"))
				})
			})

			Context("when given the --clear flag", func() {
				BeforeEach(func() {
					cmdArgs = []string{"--clear"}
				})

				It("forgets everything", func() {
					Eventually(session).Should(gexec.Exit(0))

					Eventually(run("history", "--history-file", historyFile).Out).Should(gbytes.Say("No evaluations recorded yet."))
				})
			})
		})

		Context("when a check was run with --no-history", func() {
			BeforeEach(func() {
				Eventually(run("check", "--no-history", "--history-file", historyFile, "password")).Should(gexec.Exit(0))
			})

			It("was not recorded", func() {
				Eventually(session.Out).Should(gbytes.Say("No evaluations recorded yet."))
				Eventually(session).Should(gexec.Exit(0))
			})
		})
	})

	Describe("ServeCommand", func() {
		Context("when given invalid options", func() {
			BeforeEach(func() {
				session = run("serve", "--port", "0", "--cache-ttl", "0s")
			})

			It("reports every problem", func() {
				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("port 0 is out of range"))
				Expect(session.Err).To(gbytes.Say("cache ttl must be positive"))
			})
		})
	})

	Describe("VersionCommand", func() {
		It("prints the version", func() {
			session = run("version")
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("dev"))
		})
	})
})
